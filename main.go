package main

import "chyp8/cmd"

func main() {
	cmd.Execute()
}
