package main

import "github.com/griezmannFromJavic/scheme-interpreter/cmd"

func main() {
	cmd.Execute()
}
