package main

import "layersync/cmd"

func main() {
	cmd.Execute()
}
