package cmd

import (
	"fmt"

	"github.com/coniks-sys/authskiplist/application"
	"github.com/coniks-sys/authskiplist/cli"
	"github.com/coniks-sys/authskiplist/utils"
	"github.com/spf13/cobra"
)

var buildCmd = cli.NewRunCommand("build [file]",
	"Build the list and print its root digest.",
	`Build the list from the blocks of file, or from the configured
block database if no file is given, and print the root digest.

With --signed-root the root is also signed with the configured
signing key and written to the given path.`,
	cobra.MaximumNArgs(1), buildRunFunc)

func init() {
	RootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("signed-root", "s", "", "Write the signed root to this file")
}

func buildRunFunc(cmd *cobra.Command, args []string) error {
	conf, store, err := openStore(cmd.Context(), cmd, args)
	if err != nil {
		return err
	}
	defer store.Sync()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "root    %s\n", store.Root())
	fmt.Fprintf(out, "blocks  %d\n", store.Len())
	fmt.Fprintf(out, "height  %d\n", store.Height())

	srPath, _ := cmd.Flags().GetString("signed-root")
	if srPath == "" {
		return nil
	}
	key, err := application.LoadSigningKey(conf.SignKeyPath, conf.GetPath())
	if err != nil {
		return err
	}
	b, err := store.SignRoot(key).MarshalBinary()
	if err != nil {
		return err
	}
	return utils.WriteFile(srPath, b, 0644)
}
