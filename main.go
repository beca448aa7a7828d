package main

import "github.com/jsphweid/cvtheory/cmd"

func main() {
	cmd.Execute()
}
