package main

import "github.com/aalvaropc/eulerseq/internal/cli"

func main() {
	cli.Execute()
}
