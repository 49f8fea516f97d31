package main

import "github.com/erasmus-survival/erasmusbot/cmd"

func main() {
	cmd.Execute()
}
