package main

import (
	"github.com/avilella/fermi/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
