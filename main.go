package main

import "x4stats/internal/cli"

func main() {
	cli.Execute()
}
