// Package main is the entry point for the foodsql CLI.
package main

import "github.com/nutridata-labs/foodsql/internal/cli"

func main() {
	cli.Execute()
}
