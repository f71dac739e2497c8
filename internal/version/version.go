package version

// Version is overridable at build time with -ldflags "-X replitools/internal/version.Version=...".
var Version = "0.2.0"
