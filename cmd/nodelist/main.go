// Package main provides the nodelist CLI.
package main

import "github.com/mesh-intelligence/nodelist/internal/cli"

func main() {
	cli.Execute()
}
