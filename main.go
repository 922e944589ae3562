// Entry point. All CLI handling lives in the Cobra root command in cmd/root.go.

package main

import (
	"github.com/idlerice/cannon/cmd"
)

func main() {
	cmd.Execute()
}
