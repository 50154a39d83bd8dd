package main

import "github.com/frahmantamala/crms/cmd"

func main() {
	cmd.Execute()
}
