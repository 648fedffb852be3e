package main

import "github.com/pfrederiksen/talk-events/internal/cli"

func main() {
	cli.Execute()
}
