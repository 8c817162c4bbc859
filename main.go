package main

import "schgen/cmd"

func main() {
	cmd.Execute()
}
