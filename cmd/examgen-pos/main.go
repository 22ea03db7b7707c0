// cmd/examgen-pos/main.go
package main

import (
	"os"

	"examgen/internal/posapp"
)

func main() {
	os.Exit(posapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
