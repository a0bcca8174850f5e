package main

import (
	"ytopml/cmd"
)

func main() {
	cmd.Execute()
}
