package main

import "github.com/websh-dev/websh/cmd"

func main() {
	cmd.Execute()
}
