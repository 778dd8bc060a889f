package cmd

import (
	"fmt"

	"github.com/coniks-sys/authskiplist/cli"
	"github.com/coniks-sys/authskiplist/ingest"
	"github.com/coniks-sys/authskiplist/storage/kv/leveldbkv"
	"github.com/spf13/cobra"
)

var importCmd = cli.NewRunCommand("import <file>",
	"Store the blocks of a file in the block database.",
	`Cut file into blocks and store them in the block database,
after the blocks it already holds. The database is the one
named by block_db in the configuration, or by --db.`,
	cobra.ExactArgs(1), importRunFunc)

func init() {
	RootCmd.AddCommand(importCmd)
	importCmd.Flags().String("db", "", "Path of the block database")
}

func importRunFunc(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = conf.BlockDBPath
	}
	if path == "" {
		return fmt.Errorf("No block database given")
	}

	db, err := leveldbkv.OpenDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	first, err := ingest.NextIndex(db)
	if err != nil {
		return err
	}
	sink := ingest.NewKVSink(db, 0)
	n, err := ingest.File(cmd.Context(), args[0], conf.BlockSize, sink, first)
	if ferr := sink.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d blocks from index %d\n", n, first)
	return nil
}
