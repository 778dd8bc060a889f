package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/coniks-sys/authskiplist/application"
	"github.com/coniks-sys/authskiplist/blockstore"
	"github.com/coniks-sys/authskiplist/cli"
	"github.com/coniks-sys/authskiplist/crypto/sign"
	"github.com/coniks-sys/authskiplist/utils"
	"github.com/spf13/cobra"
)

const (
	signKeyFile = "sign.secret"
	signPubFile = "sign.pub"
)

// initCmd represents the init command
var initCmd = cli.NewInitCommand("asl", initRunFunc)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
	initCmd.Flags().IntP("block-size", "b", blockstore.DefaultBlockSize, "Size of the blocks input files are cut into")
	initCmd.Flags().String("levels", blockstore.KeyLevelPolicy, `Level policy, "key" or "random"`)
}

func initRunFunc(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	blockSize, _ := cmd.Flags().GetInt("block-size")
	levels, _ := cmd.Flags().GetString("levels")

	if err := mkConfig(dir, blockSize, levels); err != nil {
		return err
	}
	if err := mkSigningKey(dir); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Created", filepath.Join(dir, "config.toml"))
	return nil
}

func mkConfig(dir string, blockSize int, levels string) error {
	file := filepath.Join(dir, "config.toml")
	logger := &application.LoggerConfig{
		EnableStacktrace: true,
		Environment:      "production",
		Path:             "asl.log",
	}
	conf := blockstore.NewConfig(file, logger)
	conf.BlockSize = blockSize
	conf.LevelPolicy = levels
	conf.SignKeyPath = signKeyFile
	if err := conf.Validate(); err != nil {
		return err
	}
	return conf.Save()
}

func mkSigningKey(dir string) error {
	sk, err := sign.GenerateKey(nil)
	if err != nil {
		return err
	}
	pk, _ := sk.Public()
	if err := utils.WriteFile(filepath.Join(dir, signKeyFile), sk, 0600); err != nil {
		return err
	}
	return utils.WriteFile(filepath.Join(dir, signPubFile), pk, 0644)
}
