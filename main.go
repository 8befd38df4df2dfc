package main

import "mwhitfielddev/zonekeeper/cmd"

func main() {
	cmd.Execute()
}
