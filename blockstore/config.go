package blockstore

import (
	"encoding/binary"
	"fmt"

	"github.com/coniks-sys/authskiplist/application"
	"github.com/coniks-sys/authskiplist/crypto"
	"github.com/coniks-sys/authskiplist/crypto/hasher"
	"github.com/coniks-sys/authskiplist/crypto/hasher/sha2"
	_ "github.com/coniks-sys/authskiplist/crypto/hasher/sha3"
	"github.com/coniks-sys/authskiplist/ingest"
	"github.com/coniks-sys/authskiplist/skiplist"
	"github.com/coniks-sys/authskiplist/utils"
)

// Level policy names accepted in the config file.
const (
	KeyLevelPolicy    = "key"
	RandomLevelPolicy = "random"
)

// DefaultBlockSize is the block size written by NewConfig.
const DefaultBlockSize = 4096

// A Config contains configuration values
// which are read at initialization time from
// a TOML format configuration file.
type Config struct {
	*application.CommonConfig
	// BlockSize is the size ingested sources are cut into.
	BlockSize int `toml:"block_size"`
	// LevelPolicy is either "key" or "random".
	LevelPolicy string `toml:"level_policy"`
	// Seed seeds the "random" level policy.
	// Zero picks a fresh random seed for every list.
	Seed uint64 `toml:"seed,omitempty"`
	// Hasher names a registered hasher, e.g. "SHA-256".
	Hasher string `toml:"hasher"`
	// SignKeyPath is the path of the ed25519 key that signs roots,
	// relative to the config file.
	SignKeyPath string `toml:"sign_key_path"`
	// BlockDBPath optionally names a leveldb directory
	// holding blocks, relative to the config file.
	BlockDBPath string `toml:"block_db,omitempty"`
}

var _ application.AppConfig = (*Config)(nil)

// NewConfig returns a configuration with default values
// that will be saved to file.
func NewConfig(file string, logConfig *application.LoggerConfig) *Config {
	return &Config{
		CommonConfig: application.NewCommonConfig(file, "toml", logConfig),
		BlockSize:    DefaultBlockSize,
		LevelPolicy:  KeyLevelPolicy,
		Hasher:       sha2.SHA256,
		SignKeyPath:  "sign.secret",
	}
}

// Load initializes a configuration from the given file
// and checks it with Validate.
func (conf *Config) Load(file, encoding string) error {
	conf.CommonConfig = application.NewCommonConfig(file, encoding, nil)
	if err := conf.GetLoader().Decode(conf); err != nil {
		return err
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	if conf.Logger != nil && conf.Logger.Path != "" {
		conf.Logger.Path = utils.ResolvePath(conf.Logger.Path, file)
	}
	if conf.BlockDBPath != "" {
		conf.BlockDBPath = utils.ResolvePath(conf.BlockDBPath, file)
	}
	return nil
}

// Save writes the configuration to its path.
func (conf *Config) Save() error {
	return conf.GetLoader().Encode(conf)
}

// Validate checks the block size, the level policy and the hasher.
func (conf *Config) Validate() error {
	if conf.BlockSize <= 0 {
		return fmt.Errorf("%w: %d", ingest.ErrBadBlockSize, conf.BlockSize)
	}
	switch conf.LevelPolicy {
	case KeyLevelPolicy, RandomLevelPolicy:
	default:
		return fmt.Errorf("Unknown level policy %q", conf.LevelPolicy)
	}
	if _, err := hasher.New(conf.Hasher); err != nil {
		return err
	}
	return nil
}

// Options builds the list options described by conf.
func (conf *Config) Options() (*skiplist.Options, error) {
	h, err := hasher.New(conf.Hasher)
	if err != nil {
		return nil, err
	}
	opts := &skiplist.Options{Hasher: h}
	switch conf.LevelPolicy {
	case KeyLevelPolicy:
		opts.Levels = skiplist.KeyLevels(h)
	case RandomLevelPolicy:
		seed := conf.Seed
		if seed == 0 {
			r, err := crypto.MakeRand()
			if err != nil {
				return nil, err
			}
			seed = binary.BigEndian.Uint64(r)
		}
		opts.Levels = skiplist.RandomLevels(seed)
	default:
		return nil, fmt.Errorf("Unknown level policy %q", conf.LevelPolicy)
	}
	return opts, nil
}
