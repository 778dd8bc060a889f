// Package cli provides builders for the cobra commands shared by the
// command-line tools of this module.
package cli

import (
	"github.com/spf13/cobra"
)

// cobraCommand is used to implement any type of cobra command
// for any of the command-line tools.
type cobraCommand interface {
	Build() *cobra.Command
}

// RunFunc implements a command. A returned error is printed
// and makes the executable exit with a non-zero status.
type RunFunc func(cmd *cobra.Command, args []string) error
