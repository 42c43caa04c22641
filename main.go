package main

import "github.com/tmarsden/orbitledger/cmd"

func main() {
	cmd.Execute()
}
