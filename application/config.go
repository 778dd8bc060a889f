package application

import (
	"fmt"
	"os"

	"github.com/coniks-sys/authskiplist/crypto/sign"
	"github.com/coniks-sys/authskiplist/utils"
)

// AppConfig provides an abstraction of the
// underlying encoding format for the configs.
type AppConfig interface {
	Load(file, encoding string) error
	Save() error
	GetPath() string
}

// CommonConfig is the generic type used to specify the configuration of
// any executable. It contains the file path, the logger configuration,
// and the config loader.
type CommonConfig struct {
	Path     string        `toml:"-"`
	Logger   *LoggerConfig `toml:"logger"`
	Encoding string        `toml:"-"`
	loader   ConfigLoader
}

// NewCommonConfig initializes an application's config file path,
// its loader for the given encoding, and the logger configuration.
// Note: This constructor must be called in each Load() method
// implementation of an AppConfig.
func NewCommonConfig(file, encoding string, logger *LoggerConfig) *CommonConfig {
	return &CommonConfig{
		Path:     file,
		Logger:   logger,
		Encoding: encoding,
		loader:   newConfigLoader(encoding),
	}
}

// GetLoader returns the config's loader.
func (conf *CommonConfig) GetLoader() ConfigLoader {
	if conf.loader == nil {
		conf.loader = newConfigLoader(conf.Encoding)
	}
	return conf.loader
}

// GetPath returns the path of the config file.
func (conf *CommonConfig) GetPath() string {
	return conf.Path
}

// LoadSigningKey loads a private signing key at the given path
// specified in the given config file.
// If there is any parsing error or the key is malformed,
// LoadSigningKey() returns an error with a nil key.
func LoadSigningKey(path, file string) (sign.PrivateKey, error) {
	signPath := utils.ResolvePath(path, file)
	b, err := os.ReadFile(signPath)
	if err != nil {
		return nil, fmt.Errorf("Cannot read signing key: %v", err)
	}
	key, err := sign.NewPrivateKey(b)
	if err != nil {
		return nil, fmt.Errorf("Signing key must be %d bytes (got %d)", sign.PrivateKeySize, len(b))
	}
	return key, nil
}

// LoadSigningPubKey loads a public signing key at the given path
// specified in the given config file.
// If there is any parsing error or the key is malformed,
// LoadSigningPubKey() returns an error with a nil key.
func LoadSigningPubKey(path, file string) (sign.PublicKey, error) {
	signPath := utils.ResolvePath(path, file)
	b, err := os.ReadFile(signPath)
	if err != nil {
		return nil, fmt.Errorf("Cannot read signing key: %v", err)
	}
	pk, err := sign.NewPublicKey(b)
	if err != nil {
		return nil, fmt.Errorf("Signing public-key must be %d bytes (got %d)", sign.PublicKeySize, len(b))
	}
	return pk, nil
}
