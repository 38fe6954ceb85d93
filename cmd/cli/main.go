package main

import "github.com/pratik-mahalle/gigmarket/internal/cli"

func main() {
	cli.Execute()
}
