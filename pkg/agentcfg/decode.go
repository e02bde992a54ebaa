package agentcfg

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile builds a Config from defaults plus field overrides read from a
// .toml, .yaml/.yml or .json file, then applies opts and validates. Keys
// absent from the file keep their defaults.
func LoadFile(filename string, opts ...Option) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	cfg := newDefaults()
	if err := decodeConfigFile(filename, f, cfg); err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}

	return finalize(cfg, opts...)
}

func decodeConfigFile(filename string, r io.Reader, v any) error {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".toml":
		_, err := toml.NewDecoder(r).Decode(v)
		if err != nil {
			return err
		}
		return nil
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(v); err != nil {
			return err
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			if err == nil {
				return fmt.Errorf("unexpected extra YAML document")
			}
			return err
		}
		return nil
	case ".json":
		dec := json.NewDecoder(r)
		if err := dec.Decode(v); err != nil {
			return err
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			if err == nil {
				return fmt.Errorf("unexpected extra content after JSON document")
			}
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported config file type %q (supported: .toml, .yaml, .yml, .json)", ext)
	}
}
