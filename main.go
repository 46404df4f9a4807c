package main

import "github.com/kozaktomas/facemesh-prep/cmd"

func main() {
	cmd.Execute()
}
