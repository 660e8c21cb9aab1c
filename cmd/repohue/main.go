package main

import "github.com/repohue/repohue/internal/cli"

func main() {
	cli.Execute()
}
