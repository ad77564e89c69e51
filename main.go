package main

import (
	"github.com/Sjlver/pa/cmd"
)

func main() {
	cmd.Execute()
}
