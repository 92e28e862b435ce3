package main

import "github.com/studio-edul/dul-works/cmd"

func main() {
	cmd.Execute()
}
