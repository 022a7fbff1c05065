package main

import "game-database/cmd"

func main() {
	cmd.Execute()
}
