package main

import "github.com/brogergvhs/shinydex/cmd"

func main() {
	cmd.Execute()
}
