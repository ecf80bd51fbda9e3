// emojied finds emoji by name from the terminal and copies them or saves
// them as PNG.
package main

import (
	"os"

	"emojied/cmd/emojied/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
