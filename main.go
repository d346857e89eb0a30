package main

import "github.com/mj1618/organizer-cli/cmd"

func main() {
	cmd.Execute()
}
