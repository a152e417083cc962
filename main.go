package main

import "github.com/byunjuneseok/cloud-map/cmd"

func main() {
	cmd.Execute()
}
