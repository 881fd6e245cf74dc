// Package main provides the explorer CLI.
package main

import "github.com/p3rf/explorer/internal/cli"

func main() {
	cli.Execute()
}
