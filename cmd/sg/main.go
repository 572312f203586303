package main

import "shellgotchi/cmd/sg/root"

func main() {
	root.Execute()
}
