package main

import "hexbalance/cmd/simsvc/cmd"

func main() {
	cmd.Execute()
}
