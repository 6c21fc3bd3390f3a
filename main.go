package main

import "github.com/statscard/github-stats-card/cmd"

func main() {
	cmd.Execute()
}
