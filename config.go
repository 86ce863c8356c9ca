package procfiles

import (
	"slices"

	"github.com/giantswarm/procfiles/internal/confparse"
	"github.com/giantswarm/procfiles/internal/core"
)

// Config is a parsed configuration file: key to value, one entry per key.
// Each LoadConfig or ParseConfig call returns a new map owned by the caller.
type Config map[string]string

// Get returns the value for key, or fallback if the key is not present. A
// key present with an empty value returns "".
func (c Config) Get(key, fallback string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return fallback
}

// Keys returns the keys in sorted order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// LoadConfig reads and parses the configuration file at path. Values are
// not validated. A missing file yields an error matching ErrConfigNotFound
// (and ErrNotFound); other read failures are returned wrapped.
func LoadConfig(path string) (Config, error) {
	m, err := confparse.Load(path)
	if err != nil {
		return nil, err
	}
	return Config(m), nil
}

// ParseConfig parses configuration text that is already in memory.
func ParseConfig(content string) Config {
	return Config(confparse.Parse(content))
}

// SaveConfig is not implemented. It logs a notice, writes nothing and
// returns ErrNotImplemented.
func SaveConfig(path string, cfg Config) error {
	return confparse.Save(core.Logger(), path, cfg)
}
