package main

import "github.com/pfrederiksen/hltv-players/internal/cli"

func main() {
	cli.Execute()
}
