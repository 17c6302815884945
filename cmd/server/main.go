package main

import "board-service/internal/cli"

func main() {
	cli.Execute()
}
