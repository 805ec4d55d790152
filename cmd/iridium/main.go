// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)

	cmd := newCommand()
	cmd.SetOut(os.Stdout)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
