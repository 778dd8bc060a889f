package cmd

import (
	"context"
	"fmt"

	"github.com/coniks-sys/authskiplist/application"
	"github.com/coniks-sys/authskiplist/blockstore"
	"github.com/coniks-sys/authskiplist/storage/kv/leveldbkv"
	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (*blockstore.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	conf := new(blockstore.Config)
	if err := conf.Load(file, "toml"); err != nil {
		return nil, err
	}
	return conf, nil
}

func newLogger(conf *blockstore.Config) (*application.Logger, error) {
	if conf.Logger == nil {
		return application.NewNopLogger(), nil
	}
	return application.NewLogger(conf.Logger)
}

// openStore loads the configuration and fills a new store from the
// file named in args, or from the configured block database when
// args is empty. The caller flushes the store's log with Sync.
func openStore(ctx context.Context, cmd *cobra.Command, args []string) (*blockstore.Config, *blockstore.Store, error) {
	conf, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(conf)
	if err != nil {
		return nil, nil, err
	}

	store, err := blockstore.New(conf, logger)
	if err != nil {
		logger.Sync()
		return nil, nil, err
	}
	if len(args) > 0 {
		_, err = store.IngestFile(ctx, args[0])
	} else {
		err = ingestDB(ctx, store, conf.BlockDBPath)
	}
	if err != nil {
		store.Sync()
		return nil, nil, err
	}
	return conf, store, nil
}

func ingestDB(ctx context.Context, store *blockstore.Store, path string) error {
	if path == "" {
		return fmt.Errorf("No input file given and no block_db configured")
	}
	db, err := leveldbkv.OpenDB(path)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = store.IngestKV(ctx, db)
	return err
}
