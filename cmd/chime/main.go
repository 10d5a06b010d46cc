package main

import "github.com/chimeio/chime/cmd/chime/cli"

func main() {
	cli.Execute()
}
