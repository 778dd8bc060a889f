package cli

import (
	"github.com/spf13/cobra"
)

// A runCommand is used to create one of an executable's
// operations.
type runCommand struct {
	use     string
	short   string
	long    string
	args    cobra.PositionalArgs
	runFunc RunFunc
}

var _ cobraCommand = (*runCommand)(nil)

// NewRunCommand constructs a new command with the given use line,
// descriptions, accepted positional arguments and the runFunc
// implementing it.
func NewRunCommand(use, short, long string, args cobra.PositionalArgs, runFunc RunFunc) *cobra.Command {
	runCmd := &runCommand{
		use:     use,
		short:   short,
		long:    long,
		args:    args,
		runFunc: runFunc,
	}
	return runCmd.Build()
}

// Build constructs the cobra.Command according to the
// RunCommand's settings.
func (runCmd *runCommand) Build() *cobra.Command {
	cmd := cobra.Command{
		Use:   runCmd.use,
		Short: runCmd.short,
		Long:  runCmd.long,
		Args:  runCmd.args,
		RunE:  runCmd.runFunc,
	}
	return &cmd
}
