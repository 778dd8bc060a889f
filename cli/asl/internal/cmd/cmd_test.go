package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coniks-sys/authskiplist/skiplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func field(t *testing.T, out, name string) string {
	for _, line := range strings.Split(out, "\n") {
		fs := strings.Fields(line)
		if len(fs) == 2 && fs[0] == name {
			return fs[1]
		}
	}
	t.Fatalf("No %s in output %q", name, out)
	return ""
}

func TestBuildProveVerify(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.toml")
	data := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(data, []byte("AAAABBBBCCCC"), 0644))

	_, err := execute(t, "init", "--dir", dir, "--block-size", "4")
	require.NoError(t, err)
	assert.FileExists(t, config)
	assert.FileExists(t, filepath.Join(dir, signKeyFile))
	assert.FileExists(t, filepath.Join(dir, signPubFile))

	// init never overwrites
	_, err = execute(t, "init", "--dir", dir, "--block-size", "4")
	assert.Error(t, err)

	signedRoot := filepath.Join(dir, "root.cbor")
	out, err := execute(t, "build", "--config", config, "--signed-root", signedRoot, data)
	require.NoError(t, err)
	root := field(t, out, "root")
	assert.Equal(t, "3", field(t, out, "blocks"))

	proofFile := filepath.Join(dir, "proof.cbor")
	out, err = execute(t, "prove", "--config", config, "--out", proofFile, "1", data)
	require.NoError(t, err)
	assert.Equal(t, root, field(t, out, "root"))

	out, err = execute(t, "verify", "--root", root, proofFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Block 1 verifies"))

	pub := filepath.Join(dir, signPubFile)
	_, err = execute(t, "verify", "--root", "", "--signed-root", signedRoot, "--pub", pub, proofFile)
	require.NoError(t, err)

	// replace the block in the proof
	b, err := os.ReadFile(proofFile)
	require.NoError(t, err)
	proof, err := skiplist.UnmarshalProof(b)
	require.NoError(t, err)
	assert.Equal(t, []byte("BBBB"), proof.Value)
	proof.Value = []byte("ZZZZ")
	b, err = proof.MarshalBinary()
	require.NoError(t, err)
	tampered := filepath.Join(dir, "tampered.cbor")
	require.NoError(t, os.WriteFile(tampered, b, 0644))

	_, err = execute(t, "verify", "--root", root, "--signed-root", "", tampered)
	assert.ErrorIs(t, err, errProofRejected)

	_, err = execute(t, "verify", "--root", "", "--signed-root", "", proofFile)
	assert.ErrorIs(t, err, errNoRoot)

	_, err = execute(t, "prove", "--config", config, "--out", filepath.Join(dir, "p2.cbor"), "9", data)
	assert.ErrorIs(t, err, skiplist.ErrNotFound)
}

func TestBuildWritesLog(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.toml")
	data := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(data, []byte("AAAABBBB"), 0644))
	_, err := execute(t, "init", "--dir", dir, "--block-size", "4")
	require.NoError(t, err)

	_, err = execute(t, "build", "--config", config, "--signed-root", "", data)
	require.NoError(t, err)
	_, err = execute(t, "build", "--config", config, "--signed-root", "", filepath.Join(dir, "missing"))
	require.Error(t, err)

	log, err := os.ReadFile(filepath.Join(dir, "asl.log"))
	require.NoError(t, err)
	assert.Contains(t, string(log), "Ingested")
	assert.Contains(t, string(log), "Ingestion stopped")
}

func TestImportThenBuild(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.toml")
	data := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(data, []byte("AAAABBBBCC"), 0644))
	_, err := execute(t, "init", "--dir", dir, "--block-size", "4")
	require.NoError(t, err)

	db := filepath.Join(dir, "blocks")
	out, err := execute(t, "import", "--config", config, "--db", db, data)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Imported 3 blocks from index 0"))

	out, err = execute(t, "import", "--config", config, "--db", db, data)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Imported 3 blocks from index 3"))

	direct, err := execute(t, "build", "--config", config, "--signed-root", "", data)
	require.NoError(t, err)
	assert.Equal(t, "3", field(t, direct, "blocks"))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "asl v"))
}
