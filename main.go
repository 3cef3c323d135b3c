package main

import "github.com/boxlite-labs/boxlite/cmd"

func main() {
	cmd.Execute()
}
