// Package config resolves settings from flags, environment and config files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	"github.com/potluck-xl/ptlk/internal/application/settings"
	"gopkg.in/yaml.v3"
)

// CLI is the command line of ptlk.
type CLI struct {
	settings.Settings `kong:"embed"`

	Config  string           `kong:"help='Config file path (.yaml or .toml)',type='path'"`
	Version kong.VersionFlag `kong:"short='V',help='Print version and exit'"`
}

// Load parses args into settings. Flags win over the config file and the
// environment, which win over the built-in defaults.
func Load(args []string, options ...kong.Option) (settings.Settings, *kong.Context, error) {
	var cli CLI

	configPath, explicit := configPathFromArgs(args)
	if configPath == "" {
		configPath = DefaultPath()
	}

	opts := []kong.Option{
		kong.Name("ptlk"),
		kong.Description("Potluck: a terminal reader for the latest tech news."),
		kong.UsageOnError(),
	}
	if _, err := os.Stat(configPath); err == nil {
		opts = append(opts, kong.Configuration(loaderFor(configPath), configPath))
	} else if explicit {
		return settings.Settings{}, nil, fmt.Errorf("config file not found: %s", configPath)
	}
	opts = append(opts, options...)

	parser, err := kong.New(&cli, opts...)
	if err != nil {
		return settings.Settings{}, nil, err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return settings.Settings{}, nil, err
	}

	cfg := cli.Settings
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	cfg.FeedURL = strings.TrimSpace(cfg.FeedURL)
	if cfg.APIURL == "" {
		return settings.Settings{}, ctx, errors.New("api url must not be empty")
	}
	if cfg.Limit <= 0 {
		return settings.Settings{}, ctx, fmt.Errorf("limit must be positive, got %d", cfg.Limit)
	}
	return cfg, ctx, nil
}

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", "ptlk", "config.yaml")
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ptlk", "config.yaml")
}

func configPathFromArgs(args []string) (string, bool) {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if value, ok := strings.CutPrefix(arg, "--config="); ok {
			return value, true
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

func loaderFor(path string) kong.ConfigurationLoader {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlKongLoader
	}
	return yamlKongLoader
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}
	return valuesResolver(values), nil
}

func tomlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if _, err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, err
	}
	return valuesResolver(values), nil
}

func valuesResolver(values map[string]any) kong.ResolverFunc {
	return func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		// Try various naming conventions
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}
			if v, ok := lookupNested(values, strings.Split(name, ".")); ok {
				return v, nil
			}
		}
		return nil, nil
	}
}

func lookupNested(values map[string]any, parts []string) (any, bool) {
	if len(parts) < 2 {
		return nil, false
	}
	curr := values
	for i, part := range parts {
		if i == len(parts)-1 {
			v, ok := curr[part]
			return v, ok
		}
		next, ok := curr[part].(map[string]any)
		if !ok {
			return nil, false
		}
		curr = next
	}
	return nil, false
}
