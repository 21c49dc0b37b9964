package main

import (
	"log"
	"os"

	"github.com/grexie/entropy/pkg/config"
)

func main() {
	config.LoadEnv()

	if err := run(config.NewSettingsFromEnv(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("entropy: %v", err)
	}
}
