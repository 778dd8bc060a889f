package cmd

import (
	"github.com/coniks-sys/authskiplist/cli"
)

var versionCmd = cli.NewVersionCommand("asl")

func init() {
	RootCmd.AddCommand(versionCmd)
}
