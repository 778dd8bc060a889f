package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/coniks-sys/authskiplist/application"
	"github.com/coniks-sys/authskiplist/cli"
	"github.com/coniks-sys/authskiplist/crypto/hasher"
	"github.com/coniks-sys/authskiplist/crypto/hasher/sha2"
	"github.com/coniks-sys/authskiplist/skiplist"
	"github.com/spf13/cobra"
)

var (
	errProofRejected = errors.New("Proof does not verify against the root")
	errBadSignature  = errors.New("Bad signature on the signed root")
	errNoRoot        = errors.New("Either --root or --signed-root is required")
)

var verifyCmd = cli.NewRunCommand("verify <proof>",
	"Check a proof of inclusion.",
	`Check the proof in the given file against a trusted root.
The root is either given in hex with --root, or read from a
signed root file (--signed-root) whose signature is checked
with the public key at --pub first.

verify needs neither the list nor the configuration file.
It exits with a non-zero status if the proof does not verify.`,
	cobra.ExactArgs(1), verifyRunFunc)

func init() {
	RootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringP("root", "r", "", "Trusted root digest in hex")
	verifyCmd.Flags().String("hasher", sha2.SHA256, "Hasher the root was computed with")
	verifyCmd.Flags().StringP("signed-root", "s", "", "Signed root file")
	verifyCmd.Flags().String("pub", "sign.pub", "Public key checking the signed root")
}

func verifyRunFunc(cmd *cobra.Command, args []string) error {
	b, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	proof, err := skiplist.UnmarshalProof(b)
	if err != nil {
		return err
	}

	root, hasherID, err := trustedRoot(cmd)
	if err != nil {
		return err
	}
	h, err := hasher.New(hasherID)
	if err != nil {
		return err
	}
	ok, err := skiplist.VerifyWith(h, proof, root)
	if err != nil {
		return err
	}
	if !ok {
		return errProofRejected
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Block %d verifies against %s\n", proof.Index, root)
	return nil
}

func trustedRoot(cmd *cobra.Command) (string, string, error) {
	root, _ := cmd.Flags().GetString("root")
	hasherID, _ := cmd.Flags().GetString("hasher")
	srPath, _ := cmd.Flags().GetString("signed-root")
	switch {
	case root != "":
		return root, hasherID, nil
	case srPath == "":
		return "", "", errNoRoot
	}

	b, err := os.ReadFile(srPath)
	if err != nil {
		return "", "", err
	}
	sr, err := skiplist.UnmarshalSignedRoot(b)
	if err != nil {
		return "", "", err
	}
	pubPath, _ := cmd.Flags().GetString("pub")
	pk, err := application.LoadSigningPubKey(pubPath, "")
	if err != nil {
		return "", "", err
	}
	if !sr.Verify(pk) {
		return "", "", errBadSignature
	}
	return sr.Root, sr.Hasher, nil
}
