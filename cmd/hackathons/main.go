package main

import "github.com/xy-planning-network/hackathons/cli"

func main() {
	cli.Execute()
}
