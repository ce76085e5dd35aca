// Package main is the entry point for the ts-module-alias-transformer CLI.
package main

import "github.com/t83714/ts-module-alias-transformer/cmd"

func main() {
	cmd.Execute()
}
