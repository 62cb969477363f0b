package main

import "github.com/ImGajeed76/bfscript/cmd"

func main() {
	cmd.Execute()
}
