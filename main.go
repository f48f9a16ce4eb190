package main

import "github.com/taskmetrics/task-incentive/cmd"

func main() {
	cmd.Execute()
}
