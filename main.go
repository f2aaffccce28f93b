package main

import (
	"os"

	"github.com/Sahanajogi126/quizforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
