// Command minisoft is the MiniSoft compiler front-end CLI, driving the
// lex/parse/check/compile pipeline stage by stage.
package main

import (
	"fmt"
	"os"

	"github.com/Adel2411/minisoft-editor/cmd/minisoft/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
