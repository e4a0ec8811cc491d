package main

import "github.com/iksnae/taskwatch/cmd"

func main() {
	cmd.Execute()
}
