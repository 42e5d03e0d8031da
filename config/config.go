// Package config loads the converter settings: defaults < file < flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"github.com/binzume/urhoconv/fileutil"
	"github.com/binzume/urhoconv/logger"
	"github.com/binzume/urhoconv/prefab"
)

type Config struct {
	Output    OutputConfig            `yaml:"output"`
	Export    prefab.Options          `yaml:"export"`
	Transform prefab.TransformOptions `yaml:"transform"`
	Input     InputConfig             `yaml:"input"`
	Logging   LoggingConfig           `yaml:"logging"`
	// Objects are component settings by object name. "*" applies to the others.
	Objects prefab.SettingsMap `yaml:"objects"`
}

type OutputConfig struct {
	Path          string `yaml:"path"`
	UseSubDirs    bool   `yaml:"use_sub_dirs"`
	FileOverwrite bool   `yaml:"file_overwrite"`
	// SubDirs by path type name, e.g. Models: Data/Models
	SubDirs map[string]string `yaml:"sub_dirs"`
}

type InputConfig struct {
	SceneName string `yaml:"scene_name"`
	// RegisterFiles registers the expected model, material and texture paths.
	RegisterFiles bool `yaml:"register_files"`
	// Terrain are name patterns (path.Match) of TerrainPatch models.
	Terrain []string `yaml:"terrain"`
}

type LoggingConfig struct {
	Level string            `yaml:"level"`
	File  logger.FileConfig `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Output:    OutputConfig{Path: ".", UseSubDirs: true},
		Export:    prefab.DefaultOptions(),
		Transform: prefab.DefaultTransformOptions(),
		Input:     InputConfig{RegisterFiles: true},
		Logging:   LoggingConfig{Level: "info", File: logger.DefaultFileConfig("")},
		Objects:   prefab.SettingsMap{prefab.SharedSettings: prefab.DefaultObjectSettings()},
	}
}

// Load reads path over the defaults and applies the flags. path may be empty and flags may be nil.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if flags != nil {
		flags.Apply(cfg)
	}
	return cfg, cfg.Validate()
}

func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	return errors.Wrapf(yaml.UnmarshalStrict(data, c), "parse config %s", path)
}

func (c *Config) Validate() error {
	if !c.Transform.FrontView.Valid() {
		return errors.Errorf("invalid front view: %q", c.Transform.FrontView)
	}
	if c.Transform.Scale <= 0 {
		return errors.Errorf("invalid scale: %v", c.Transform.Scale)
	}
	if c.Export.ExportMode != prefab.ExportEverything && c.Export.ExportMode != prefab.ExportProps {
		return errors.Errorf("invalid export mode: %q", c.Export.ExportMode)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	for name := range c.Output.SubDirs {
		if _, ok := fileutil.ParsePathType(name); !ok {
			return errors.Errorf("unknown path type: %q", name)
		}
	}
	return nil
}

// ExporterOptions returns the export options with the transform settings.
func (c *Config) ExporterOptions() prefab.Options {
	opt := c.Export
	opt.Transform = c.Transform
	return opt
}

func (c *Config) FileOptions() *fileutil.Options {
	opt := &fileutil.Options{
		OutputPath:    c.Output.Path,
		UseSubDirs:    c.Output.UseSubDirs,
		FileOverwrite: c.Output.FileOverwrite,
		SubDirs:       map[fileutil.PathType]string{},
	}
	for name, dir := range c.Output.SubDirs {
		if t, ok := fileutil.ParsePathType(name); ok {
			opt.SubDirs[t] = dir
		}
	}
	return opt
}

// SaveTo writes the config as YAML.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
