package main

import (
	"os"

	charnncmder "github.com/papercomputeco/charnn/cmd/charnn"
)

func main() {
	cmd := charnncmder.NewCharnnCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
