package main

import "vaultstack/cmd/vaultstack/cmd"

func main() {
	cmd.Execute()
}
