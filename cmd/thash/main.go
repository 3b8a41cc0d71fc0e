package main

import (
	"context"
	"log"

	"github.com/eargollo/thash/internal/cli"
)

func main() {
	log.SetFlags(0)
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("thash: %v", err)
	}
}
