package main

import "docvault/cmd/client/cmd"

func main() {
	cmd.Execute()
}
