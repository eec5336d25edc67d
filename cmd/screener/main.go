package main

import "github.com/rnjstp9754-jpg/swing-screener/cmd/screener/cmd"

func main() {
	cmd.Execute()
}
