package main

import "github.com/aalvaropc/ventmap/internal/cli"

func main() {
	cli.Execute()
}
