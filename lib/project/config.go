package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arminrejzovic/bosscript/util"
	"gopkg.in/yaml.v3"
)

const (
	YAMLFile = "bosscript.yaml"
	TOMLFile = "bosscript.toml"

	// SourceExt is the extension of BosScript source files.
	SourceExt = ".boss"
)

type Config struct {
	Name        string   `yaml:"name" toml:"name"`
	Description string   `yaml:"description" toml:"description"`
	Version     string   `yaml:"version" toml:"version"`
	Main        string   `yaml:"main" toml:"main"`
	SourceDir   string   `yaml:"source" toml:"source"`
	Author      string   `yaml:"author" toml:"author"`
	License     string   `yaml:"license" toml:"license"`
	Javascript  bool     `yaml:"javascript" toml:"javascript"`
	Requires    string   `yaml:"requires,omitempty" toml:"requires,omitempty"`
	Exclude     []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`
}

func (c *Config) CreateDefault(name string) {
	if name == "." || name == "" {
		name = "NoviProjekat"
	}
	c.Name = name
	c.Description = "A new BosScript project"
	c.Version = "1.0.0"
	c.Main = "src/main" + SourceExt
	c.SourceDir = "src"
	c.Author = "Anonymous"
	c.License = "MIT"
}

// Save writes the config as TOML when path ends in .toml and as YAML
// otherwise. An existing file is only replaced when overwrite is set or the
// user agrees at the prompt.
func (c *Config) Save(path string, overwrite bool) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		if !overwrite && !util.PromptYN(path+" already exists. Overwrite?", false) {
			return nil
		}
	}

	var buf bytes.Buffer
	if isTOML(path) {
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
	} else {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads bosscript.yaml from dir, or bosscript.toml when there is no
// YAML file.
func Load(dir string) (Config, error) {
	conf, err := LoadFile(filepath.Join(dir, YAMLFile))
	if !errors.Is(err, fs.ErrNotExist) {
		return conf, err
	}
	conf, err = LoadFile(filepath.Join(dir, TOMLFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("no %s or %s in %s: %w", YAMLFile, TOMLFile, dir, fs.ErrNotExist)
	}
	return conf, err
}

func LoadFile(path string) (Config, error) {
	var conf Config

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if isTOML(path) {
		if _, err := toml.Decode(string(data), &conf); err != nil {
			return Config{}, fmt.Errorf("decoding %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &conf); err != nil {
			return Config{}, fmt.Errorf("decoding %s: %w", path, err)
		}
	}

	return conf, nil
}

// CheckToolchain reports whether version meets the project's requires
// constraint. An empty constraint accepts any version.
func (c Config) CheckToolchain(version string) error {
	if c.Requires == "" {
		return nil
	}
	v, err := util.Parse(version)
	if err != nil {
		return fmt.Errorf("toolchain version: %w", err)
	}
	ok, err := v.Satisfies(c.Requires)
	if err != nil {
		return fmt.Errorf("project %s requires %q: %w", c.Name, c.Requires, err)
	}
	if !ok {
		return fmt.Errorf("project %s requires bosscript %s, have %s", c.Name, c.Requires, v)
	}
	return nil
}

// Sources lists the source files under the project's source directory in
// lexical order, as paths joined onto root. Exclude patterns match either the
// slash separated path relative to root or the base name.
func (c Config) Sources(root string) ([]string, error) {
	dir := filepath.Join(root, c.SourceDir)

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, SourceExt) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		excluded, err := c.excluded(filepath.ToSlash(rel), d.Name())
		if err != nil {
			return err
		}
		if !excluded {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing sources in %s: %w", dir, err)
	}
	return files, nil
}

func (c Config) excluded(rel, base string) (bool, error) {
	for _, pattern := range c.Exclude {
		for _, name := range []string{rel, base} {
			ok, err := filepath.Match(pattern, name)
			if err != nil {
				return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
