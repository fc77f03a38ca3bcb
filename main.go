package main

import (
	"os"

	"github.com/arumugaprakash-t/blogs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
