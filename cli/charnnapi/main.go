package main

import (
	"os"

	charnncmder "github.com/papercomputeco/charnn/cmd/charnn"
	servecmder "github.com/papercomputeco/charnn/cmd/charnn/serve"
)

func main() {
	cmd := servecmder.NewServeCmd()
	cmd.Use = "charnnapi"
	charnncmder.AddGlobalFlags(cmd)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
