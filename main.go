package main

import "github.com/triagehall/wardkeeper/cmd"

func main() {
	cmd.Execute()
}
