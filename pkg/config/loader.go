package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/macropower/turner/pkg/schema"
	"github.com/macropower/turner/pkg/ui/theme"
)

// Validator validates configuration data against a schema.
type Validator interface {
	Validate(data any) error
}

// Loader reads, validates, and decodes a configuration document.
type Loader struct {
	validator Validator
	theme     *theme.Theme
	data      []byte
}

// LoaderOpt configures a [Loader].
type LoaderOpt func(*Loader)

// WithValidator sets a custom validator.
func WithValidator(v Validator) LoaderOpt {
	return func(l *Loader) {
		l.validator = v
	}
}

// WithThemeFromData extracts the theme from the config data, so that errors
// in the document itself can still be styled per its theme setting.
func WithThemeFromData() LoaderOpt {
	return func(l *Loader) {
		l.theme = getTheme(l.data)
	}
}

// NewLoaderFromBytes creates a [Loader] from byte data.
func NewLoaderFromBytes(data []byte, opts ...LoaderOpt) *Loader {
	l := &Loader{
		validator: DefaultValidator,
		theme:     theme.Default,
		data:      data,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// NewLoaderFromFile creates a [Loader] from a file path.
func NewLoaderFromFile(path string, opts ...LoaderOpt) (*Loader, error) {
	data, err := readConfig(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return NewLoaderFromBytes(data, opts...), nil
}

// Validate checks the configuration data against the schema without loading
// it into a [Config].
func (l *Loader) Validate() error {
	var anyConfig any

	dec := yaml.NewDecoder(bytes.NewReader(l.data))

	err := dec.Decode(&anyConfig)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if l.validator != nil {
		err = l.validator.Validate(anyConfig)
		if err != nil {
			return l.annotate(err)
		}
	}

	return nil
}

// Load parses and returns the [Config].
func (l *Loader) Load() (*Config, error) {
	c := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(l.data))

	err := dec.Decode(c)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.EnsureDefaults()

	// Conflicting key bindings cannot be expressed in the schema.
	err = c.KeyBinds.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// GetTheme returns the theme for error formatting.
func (l *Loader) GetTheme() *theme.Theme {
	return l.theme
}

// annotate attaches the offending source lines to a [schema.ValidationError].
func (l *Loader) annotate(err error) error {
	var validationErr *schema.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Path == nil {
		return err
	}

	source, annotateErr := validationErr.Path.AnnotateSource(l.data, true)
	if annotateErr != nil {
		return err
	}

	return fmt.Errorf("%w:\n%s", err, source)
}

// getTheme pulls ui.theme out of raw config data. Invalid documents fall
// back to the default theme.
func getTheme(data []byte) *theme.Theme {
	var themeName string

	path := yaml.PathBuilder{}
	err := path.Root().Child("ui").Child("theme").Build().Read(bytes.NewReader(data), &themeName)
	if err != nil {
		slog.Debug("could not read theme, config might be invalid")

		return theme.Default
	}

	return theme.New(themeName)
}
