package main

import (
	"log"

	"github.com/oneinabillion/vedic-match/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
