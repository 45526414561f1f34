// Package config holds the tunables shared by the mapper, the reducer,
// and the local pipeline. Values come from the built-in defaults, then
// an optional YAML file named by $WCCONFIG, then WC_<FIELD>
// environment variables (e.g., WC_STATS=true, WC_BUFSZ=1048576).
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	db "streamwc/debug"
)

const (
	WCCONFIG  = "WCCONFIG"
	ENVPREFIX = "WC_"

	KBYTE = 1 << 10
	MBYTE = 1 << 20
)

var defaults = `
bufsz: 1048576
linesz: 67108864
readahead: 4
stats: false
output: "-"
spilldir: ""
s3profile: ""
mincap: 1
maxcap: 64
`

type Config struct {
	// Size of the buffered reader and writer around stdin/stdout.
	Bufsz int `yaml:"bufsz"`
	// Longest line the scanner will accept.
	Linesz int `yaml:"linesz"`
	// Number of read-ahead buffers; 0 reads directly.
	Readahead int `yaml:"readahead"`
	// Log a Result for each stage on stderr.
	Stats bool `yaml:"stats"`
	// Sink of the local pipeline ("-" is stdout).
	Output string `yaml:"output"`
	// Directory for the local pipeline's spill file; "" is os.TempDir.
	Spilldir string `yaml:"spilldir"`
	// AWS shared config profile for s3:// inputs.
	S3profile string `yaml:"s3profile"`
	// Bounds on the per-key value buffer of the sorting reducer.
	Mincap int `yaml:"mincap"`
	Maxcap int `yaml:"maxcap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := decode(strings.NewReader(defaults))
	if err != nil {
		db.DFatalf("Yaml decode defaults err %v", err)
	}
	return cfg
}

// Load builds the configuration from defaults, $WCCONFIG, and the
// environment.
func Load() (*Config, error) {
	cfg := Default()
	if pn := os.Getenv(WCCONFIG); pn != "" {
		if err := cfg.readFile(pn); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.Environ()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	db.DPrintf(db.CONFIG, "config %+v", cfg)
	return cfg, nil
}

func decode(rdr io.Reader) (*Config, error) {
	cfg := &Config{}
	d := yaml.NewDecoder(rdr)
	if err := d.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) readFile(pn string) error {
	file, err := os.Open(pn)
	if err != nil {
		return fmt.Errorf("config %v: %w", pn, err)
	}
	defer file.Close()
	d := yaml.NewDecoder(file)
	// Decoding into the populated struct keeps defaults for absent keys.
	if err := d.Decode(cfg); err != nil {
		return fmt.Errorf("config %v: %w", pn, err)
	}
	return nil
}

// applyEnv overrides fields from WC_<FIELD>=value entries in env.
func (cfg *Config) applyEnv(env []string) error {
	m := make(map[string]interface{})
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, ENVPREFIX) {
			continue
		}
		m[strings.ToLower(strings.TrimPrefix(k, ENVPREFIX))] = v
	}
	if len(m) == 0 {
		return nil
	}
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := d.Decode(m); err != nil {
		return fmt.Errorf("config env: %w", err)
	}
	return nil
}

func (cfg *Config) Validate() error {
	if cfg.Bufsz <= 0 {
		return fmt.Errorf("config: bufsz %d must be positive", cfg.Bufsz)
	}
	if cfg.Linesz < bufio.MaxScanTokenSize {
		return fmt.Errorf("config: linesz %d below %d", cfg.Linesz, bufio.MaxScanTokenSize)
	}
	if cfg.Readahead < 0 {
		return fmt.Errorf("config: readahead %d is negative", cfg.Readahead)
	}
	if cfg.Mincap < 0 || cfg.Maxcap < 1 || cfg.Mincap > cfg.Maxcap {
		return fmt.Errorf("config: bad mincap %d maxcap %d", cfg.Mincap, cfg.Maxcap)
	}
	return nil
}
