package main

import "github.com/muralfm/muralcli/cmd"

func main() {
	cmd.Execute()
}
