package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/macropower/turner/pkg/keys"
	"github.com/macropower/turner/pkg/paginator"
	"github.com/macropower/turner/pkg/ui"
)

//go:generate go run ../../internal/schemagen/main.go -o config.v1beta1.json

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	ValidAPIVersions = []string{
		"turner.macropower.dev/v1beta1",
	}
	ValidKinds = []string{
		"Configuration",
	}
)

//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	Pagination *paginator.Config `json:"pagination,omitempty" jsonschema:"title=Pagination"`
	UI         *UIConfig         `json:"ui,omitempty"         jsonschema:"title=UI"`
	KeyBinds   *KeyBinds         `json:"keybinds,omitempty"   jsonschema:"title=Key Bindings"`
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind"`
}

// New creates a [Config] with default values.
func New() *Config {
	c := &Config{
		APIVersion: ValidAPIVersions[0],
		Kind:       ValidKinds[0],
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.Pagination == nil {
		c.Pagination = &paginator.Config{}
	}

	c.Pagination.EnsureDefaults()

	if c.UI == nil {
		c.UI = &UIConfig{}
	}

	c.UI.EnsureDefaults()

	if c.KeyBinds == nil {
		c.KeyBinds = &KeyBinds{}
	}

	c.KeyBinds.EnsureDefaults()
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	apiVersion, ok := jss.Properties.Get("apiVersion")
	if !ok {
		panic("apiVersion property not found in schema")
	}

	for _, version := range ValidAPIVersions {
		apiVersion.OneOf = append(apiVersion.OneOf, &jsonschema.Schema{
			Type:  "string",
			Const: version,
			Title: "API Version",
		})
	}

	_, _ = jss.Properties.Set("apiVersion", apiVersion)

	kind, ok := jss.Properties.Get("kind")
	if !ok {
		panic("kind property not found in schema")
	}

	for _, kindValue := range ValidKinds {
		kind.OneOf = append(kind.OneOf, &jsonschema.Schema{
			Type:  "string",
			Const: kindValue,
			Title: "Kind",
		})
	}

	_, _ = jss.Properties.Set("kind", kind)
}

// MarshalYAML serializes the config to YAML.
func (c *Config) MarshalYAML() ([]byte, error) {
	b := &bytes.Buffer{}

	enc := yaml.NewEncoder(b, yaml.Indent(2))
	err := enc.Encode(*c)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	return b.Bytes(), nil
}

// UIConfig contains TUI-specific configuration.
type UIConfig struct {
	// Watch controls whether the content source is re-read on file changes.
	Watch *bool `json:"watch,omitempty" jsonschema:"title=Watch"`
	// Theme sets the color theme, by chroma style name.
	Theme string `json:"theme,omitempty" jsonschema:"title=Theme"`
}

func (c *UIConfig) EnsureDefaults() {
	if c.Watch == nil {
		watch := true
		c.Watch = &watch
	}
	if c.Theme == "" {
		c.Theme = "auto"
	}
}

// WatchEnabled reports whether file watching is on.
func (c *UIConfig) WatchEnabled() bool {
	return c.Watch != nil && *c.Watch
}

// KeyBinds groups the key bindings of every component.
type KeyBinds struct {
	Common    *ui.CommonKeyBinds  `json:"common,omitempty"    jsonschema:"title=Common"`
	Paginator *paginator.KeyBinds `json:"paginator,omitempty" jsonschema:"title=Paginator"`
}

func (kb *KeyBinds) EnsureDefaults() {
	if kb.Common == nil {
		kb.Common = &ui.CommonKeyBinds{}
	}
	if kb.Paginator == nil {
		kb.Paginator = &paginator.KeyBinds{}
	}

	kb.Common.EnsureDefaults()
	kb.Paginator.EnsureDefaults()
}

// Validate checks for conflicting bindings across components.
func (kb *KeyBinds) Validate() error {
	return errors.Join(
		keys.ValidateBinds(
			kb.Common.GetKeyBinds(),
			kb.Paginator.GetKeyBinds(),
		),
	)
}

// WriteDefaultConfig writes the embedded default config.yaml and jsonschema
// to the specified path.
func WriteDefaultConfig(path string, force bool) error {
	configExists := false
	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		switch {
		case err == nil && pathInfo.Mode().IsRegular():
			configExists = true
		case pathInfo.IsDir():
			return fmt.Errorf("%s: path is a directory", path)
		default:
			return fmt.Errorf("%s: unknown file state", path)
		}
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	if configExists && force {
		// Move the existing file to a backup.
		backupFile := fmt.Sprintf("%s.%d.old", filepath.Base(path), time.Now().UnixNano())
		backupPath := filepath.Join(filepath.Dir(path), backupFile)
		slog.Info("backing up existing config file",
			slog.String("path", backupPath),
		)

		err = os.Rename(path, backupPath)
		if err != nil {
			return fmt.Errorf("rename existing config file to backup: %w", err)
		}

		configExists = false
	}

	if !configExists {
		slog.Info("write default configuration",
			slog.String("path", path),
		)

		err = os.WriteFile(path, defaultConfigYAML, 0o600)
		if err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	} else {
		slog.Debug("configuration file already exists, skipping write",
			slog.String("path", path),
		)
	}

	// Write the JSON schema file alongside the config file.
	schemaPath := filepath.Join(filepath.Dir(path), "config.v1beta1.json")
	slog.Debug("write JSON schema",
		slog.String("path", schemaPath),
	)

	err = os.WriteFile(schemaPath, schemaJSON, 0o600)
	if err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}

	return nil
}

// GetPath returns the configuration file path, preferring $XDG_CONFIG_HOME.
func GetPath() string {
	if xdgHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		return filepath.Join(xdgHome, "turner", "config.yaml")
	}

	usrHome, err := os.UserHomeDir()
	if err == nil && usrHome != "" {
		return filepath.Join(usrHome, ".config", "turner", "config.yaml")
	}

	tmpConfig := filepath.Join(os.TempDir(), "turner", "config.yaml")

	slog.Warn("could not determine user config directory, using temp path for config",
		slog.String("path", tmpConfig),
		slog.Any("error", fmt.Errorf("$XDG_CONFIG_HOME is unset, fall back to home directory: %w", err)),
	)

	return tmpConfig
}

func readConfig(path string) ([]byte, error) {
	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		if err == nil && pathInfo.IsDir() {
			return nil, fmt.Errorf("%s: path is a directory", path)
		}
		if err == nil && !pathInfo.Mode().IsRegular() {
			return nil, fmt.Errorf("%s: unknown file state", path)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}
