package main

import (
	"log"
	"os"

	"github.com/MRtecno98/izy/cli"
)

func main() {
	log.SetPrefix("izy: ")
	log.SetFlags(0)

	if err := cli.NewApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
