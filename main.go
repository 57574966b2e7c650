package main

import (
	"os"

	"github.com/sparkifire/gemini-check/internal/commands"
)

func main() {
	os.Exit(commands.Execute())
}
