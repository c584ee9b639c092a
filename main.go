package main

import "inventory-checker/cmd"

func main() {
	cmd.Execute()
}
