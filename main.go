package main

import "github.com/statikdev/gostatik/cmd"

func main() {
	cmd.Execute()
}
