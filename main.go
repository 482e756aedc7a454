package main

import "github.com/xll-gen/bin2c/cmd"

// main is the entry point of the bin2c CLI application.
func main() {
	cmd.Execute()
}
