package main

import "github.com/encodeous/vecsim/cmd"

func main() {
	cmd.Execute()
}
