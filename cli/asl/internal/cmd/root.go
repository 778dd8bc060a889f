// Package cmd implements the CLI commands for asl.
package cmd

import (
	"github.com/coniks-sys/authskiplist/cli"
)

// RootCmd represents the base "asl" command when called without any subcommands.
var RootCmd = cli.NewRootCommand("asl",
	"Authenticated skip list over file blocks",
	`asl cuts a file into fixed size blocks, stores them in an
authenticated skip list and prints the root digest. A proof for
any block can be written to a file and checked later against the
root alone, or against a root signed with the key created by init.`)

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", "config.toml", "Path to the configuration file")
}
