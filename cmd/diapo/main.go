package main

import "diapo/cmd/diapo/cmd"

func main() {
	cmd.Execute()
}
