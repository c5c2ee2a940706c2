package main

import (
	"github.com/astforge/astforge/cmd"
)

func main() {
	cmd.Execute()
}
