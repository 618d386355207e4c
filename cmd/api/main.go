// Package main is the assistant command. It serves the chat, graph and
// dashboard panels over HTTP, and can answer a single query or render a
// graph from the command line.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
