package main

import "github.com/kumaryash98110-netizen/investcore/internal/cli"

func main() {
	cli.Execute()
}
