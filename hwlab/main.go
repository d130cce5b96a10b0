// Package main is the entry point of the hwlab command.
package main

import "github.com/sarchlab/hwlab/hwlab/cmd"

func main() {
	cmd.Execute()
}
