// cmd/pausefork/main.go
package main

import (
	"replitools/internal/appshell"
	"replitools/internal/pauseforkapp"
)

func main() {
	appshell.Main(pauseforkapp.RunContext)
}
