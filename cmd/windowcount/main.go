// cmd/windowcount/main.go
package main

import (
	"replitools/internal/appshell"
	"replitools/internal/windowapp"
)

func main() {
	appshell.Main(windowapp.RunContext)
}
