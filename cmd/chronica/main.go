package main

import (
	"github.com/tebeka/atexit"

	"github.com/sarchlab/chronica/cmd/chronica/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
