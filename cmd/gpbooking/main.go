// filepath: cmd/gpbooking/main.go
package main

import (
	"gpbooking/internal/cli"
)

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
