package main

import "github.com/conorfennell/probtrack/internal/cli"

func main() {
	cli.Execute()
}
