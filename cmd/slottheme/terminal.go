package main

import (
	"os"

	"golang.org/x/term"
)

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
