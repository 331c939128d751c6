package main

import "paperqa/cmd"

func main() {
	cmd.Execute()
}
