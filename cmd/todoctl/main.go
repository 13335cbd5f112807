package main

import "github.com/fastygo/todoclient/internal/cli"

func main() {
	cli.Execute()
}
