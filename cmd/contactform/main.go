package main

import (
	"log"
	"os"

	"github.com/goliatone/go-contactform/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.SetFlags(0)
		log.Printf("contactform: %v", err)
		os.Exit(1)
	}
}
