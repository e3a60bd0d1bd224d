package main

import "github.com/ridoystarlord/entigen/cmd"

func main() {
	cmd.Execute()
}
