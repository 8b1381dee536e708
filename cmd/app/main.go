package main

import "github.com/akyairhashvil/pomo/internal/cli"

func main() {
	cli.Execute()
}
