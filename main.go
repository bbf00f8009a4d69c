package main

import "github.com/robalobadob/hangman/internal/cli"

func main() {
	cli.Execute()
}
