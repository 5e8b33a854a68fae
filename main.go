package main

import "trayline/internal/cli"

func main() {
	cli.Execute()
}
