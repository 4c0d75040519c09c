package main

import (
	"os"

	"github.com/Isha3007/Gov-chatbot/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
