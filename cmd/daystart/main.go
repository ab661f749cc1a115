package main

import "github.com/halversen/daystart/internal/cli"

func main() {
	cli.Execute()
}
