package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/ventmap/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads ventmap.yaml from the workspace root and applies defaults.
// A missing file yields the defaults together with a KindNotFound error so
// callers can decide whether that matters.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	return ParseConfig(path, b)
}

// ParseConfig decodes ventmap.yaml content on top of the defaults.
func ParseConfig(path string, b []byte) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	v := y.Ventmap
	if strings.TrimSpace(v.Defaults.Part) != "" {
		variant, err := domain.ParseVariant(v.Defaults.Part)
		if err != nil {
			return cfg, invalidField(path, "ventmap.defaults.part", err)
		}
		cfg.Defaults.Variant = variant
	}
	if v.Defaults.Threshold != nil {
		if *v.Defaults.Threshold < 1 {
			return cfg, invalidField(path, "ventmap.defaults.threshold",
				fmt.Errorf("must be >= 1, got %d", *v.Defaults.Threshold))
		}
		cfg.Defaults.Threshold = *v.Defaults.Threshold
	}
	if v.Defaults.Input != "" {
		cfg.Defaults.Input = v.Defaults.Input
	}
	if v.Paths.InputDir != "" {
		cfg.Paths.InputDir = v.Paths.InputDir
	}
	if v.Solve.Workers != nil {
		if *v.Solve.Workers < 1 {
			return cfg, invalidField(path, "ventmap.solve.workers",
				fmt.Errorf("must be >= 1, got %d", *v.Solve.Workers))
		}
		cfg.Solve.Workers = *v.Solve.Workers
	}
	if v.Diagram.Color != nil {
		cfg.Diagram.Color = *v.Diagram.Color
	}
	if v.Diagram.MaxSize != nil {
		if *v.Diagram.MaxSize < 1 {
			return cfg, invalidField(path, "ventmap.diagram.max_size",
				fmt.Errorf("must be >= 1, got %d", *v.Diagram.MaxSize))
		}
		cfg.Diagram.MaxSize = *v.Diagram.MaxSize
	}

	return cfg, nil
}

func invalidField(path, field string, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %v: %w", field, err, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Ventmap struct {
		Defaults struct {
			// Part is a string so both `part: 2` and `part: all` decode.
			Part      string `yaml:"part"`
			Threshold *int   `yaml:"threshold"`
			Input     string `yaml:"input"`
		} `yaml:"defaults"`

		Paths struct {
			InputDir string `yaml:"input_dir"`
		} `yaml:"paths"`

		Solve struct {
			Workers *int `yaml:"workers"`
		} `yaml:"solve"`

		Diagram struct {
			Color   *bool `yaml:"color"`
			MaxSize *int  `yaml:"max_size"`
		} `yaml:"diagram"`
	} `yaml:"ventmap"`
}
