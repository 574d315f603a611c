package main

import "github.com/theirongolddev/bunkmate/cmd"

func main() {
	cmd.Execute()
}
