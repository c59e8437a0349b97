package main

import "github.com/aalvaropc/recipedeck/internal/cli"

func main() {
	cli.Execute()
}
