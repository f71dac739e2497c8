// cmd/bed2genbank/main.go
package main

import (
	"replitools/internal/appshell"
	"replitools/internal/genbankapp"
)

func main() {
	appshell.Main(genbankapp.RunContext)
}
