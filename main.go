package main

import "github.com/aalvaropc/seqtools/internal/cli"

func main() {
	cli.Execute()
}
