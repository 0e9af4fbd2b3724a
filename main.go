package main

import "github.com/showupapp/showup/cmd"

func main() {
	cmd.Execute()
}
