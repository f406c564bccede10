// gh-chrono converts between human-readable time expressions and millisecond
// counts.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/gh-chrono/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
