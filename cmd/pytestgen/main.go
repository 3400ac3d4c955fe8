package main

import "github.com/pydesktop/pytestgen/internal/cli"

func main() {
	cli.Execute()
}
