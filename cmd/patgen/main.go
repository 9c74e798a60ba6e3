// Command patgen generates and negates test values from generator
// expressions or catalog fields.
package main

import (
	"os"

	"github.com/mgm-tp/jfunk-sub000/cmd/patgen/command"
)

func main() {
	if err := command.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
