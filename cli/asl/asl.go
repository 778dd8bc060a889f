// Executable asl builds an authenticated skip list over the blocks
// of a file, and produces and checks proofs of inclusion.
package main

import (
	"github.com/coniks-sys/authskiplist/cli"
	"github.com/coniks-sys/authskiplist/cli/asl/internal/cmd"
)

func main() {
	cli.ExecuteRoot(cmd.RootCmd)
}
