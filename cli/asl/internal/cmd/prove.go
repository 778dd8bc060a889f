package cmd

import (
	"fmt"
	"strconv"

	"github.com/coniks-sys/authskiplist/cli"
	"github.com/coniks-sys/authskiplist/utils"
	"github.com/spf13/cobra"
)

var proveCmd = cli.NewRunCommand("prove <index> [file]",
	"Write a proof of inclusion for one block.",
	`Build the list like build does and write a proof of inclusion
for the block at index to the --out file. The root the proof
verifies against is printed.`,
	cobra.RangeArgs(1, 2), proveRunFunc)

func init() {
	RootCmd.AddCommand(proveCmd)
	proveCmd.Flags().StringP("out", "o", "proof.cbor", "Write the proof to this file")
}

func proveRunFunc(cmd *cobra.Command, args []string) error {
	index, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("Bad block index %q: %v", args[0], err)
	}
	_, store, err := openStore(cmd.Context(), cmd, args[1:])
	if err != nil {
		return err
	}
	defer store.Sync()
	proof, root, err := store.ProveBlockWithRoot(index)
	if err != nil {
		return err
	}
	b, err := proof.MarshalBinary()
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	if err := utils.WriteFile(out, b, 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "root    %s\n", root)
	fmt.Fprintf(cmd.OutOrStdout(), "steps   %d\n", len(proof.Steps))
	return nil
}
