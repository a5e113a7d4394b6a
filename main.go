package main

import "github.com/roomctl/roomctl/internal/adapters/driving/cli"

// Version can be set during build with -ldflags
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
