package main

import (
	"fmt"
	"os"

	"github.com/bcolb/searchtree/pkg/cli"
)

func main() {
	if err := cli.Run(&cli.CLI, os.Args[1:], os.Stdout); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
