package main

import "github.com/unicodetools/ucdsync/cmd"

func main() {
	cmd.Execute()
}
