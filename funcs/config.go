package funcs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	plog "github.com/phuslu/log"
	yaml "gopkg.in/yaml.v3"
)

// Config holds the settings shared by a group of decorators.
type Config struct {
	// LogLevel is one of trace, debug, info, warn or error. Empty disables
	// logging.
	LogLevel string `yaml:"log_level"`

	// MemoHasher selects the memo-cache hasher. Defaults to xxh3.
	MemoHasher HasherName `yaml:"memo_hasher"`

	// MemoHashSeed seeds the xxh3 hasher.
	MemoHashSeed uint64 `yaml:"memo_hash_seed"`

	// MemoHashKey keys the blake2b hasher. At most 64 bytes.
	MemoHashKey string `yaml:"memo_hash_key"`
}

// DefaultConfig returns a [Config] with logging off and the xxh3 hasher.
func DefaultConfig() Config {
	return Config{MemoHasher: HasherXXH3}
}

// ParseConfig decodes a YAML document over [DefaultConfig] and validates it.
// Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfig is [ParseConfig] reading from r. An empty document yields the
// defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var logLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.LogLevel != "" && !logLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	_, err := c.hasher()
	return err
}

// Options converts c into decorator options.
func (c Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	h, _ := c.hasher()
	opts := []Option{WithHasher(h)}
	if c.LogLevel != "" {
		opts = append(opts, WithLogger(plog.Logger{
			Level:      plog.ParseLevel(strings.ToLower(c.LogLevel)),
			TimeField:  "time",
			TimeFormat: "15:04:05",
			Writer:     &plog.IOWriter{Writer: os.Stderr},
		}))
	}
	return opts, nil
}

func (c Config) hasher() (Hasher, error) {
	h, err := NewHasher(c.MemoHasher, c.MemoHashSeed, []byte(c.MemoHashKey))
	if err != nil {
		return nil, err
	}
	if c.MemoHashKey != "" && c.MemoHasher != HasherBlake2b {
		return nil, fmt.Errorf("%w: memo_hash_key requires memo_hasher %q", ErrInvalidConfig, HasherBlake2b)
	}
	return h, nil
}
