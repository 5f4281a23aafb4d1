// Command siliconprairie serves the Silicon Prairie website
package main

import (
	"os"

	"github.com/RMTN1/silicon-prairie/cmd/siliconprairie/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
