package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/progressus/internal/errors"
	"github.com/vango-dev/progressus/pkg/progress"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "progressus.json"

	// DefaultSelector locates the container when none is configured.
	DefaultSelector = ".progressus"
)

// Config represents progressus.json.
type Config struct {
	// Selector locates the container element.
	Selector string `json:"selector,omitempty"`

	// Input is an HTML file holding the container. Empty means the CLI
	// builds a document with a single container matching Selector.
	Input string `json:"input,omitempty"`

	// Max is the upper bound (number or numeric string). 0, "" and null
	// mean 1.
	Max any `json:"max,omitempty"`

	// Value is the starting offset. "" and null mean 0.
	Value any `json:"value,omitempty"`

	// Text is the initial label.
	Text string `json:"text,omitempty"`

	// Format is a template for the value element; see
	// progress.TemplateFormatter. Empty keeps the default "N%".
	Format string `json:"format,omitempty"`

	// Steps are the deltas applied by "progressus run".
	Steps []float64 `json:"steps,omitempty"`

	// Pretty indents rendered HTML.
	Pretty bool `json:"pretty,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Selector: DefaultSelector,
	}
}

// Load reads progressus.json from dir. A missing file is not an error; the
// defaults are returned instead.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("P020").
				WithDetail("No configuration file at " + path).
				WithSuggestion("Run 'progressus init' to create one or drop --config")
		}
		return nil, errors.New("P020").Wrap(err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("P021").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("P020").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("P020").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// InputPath returns Input resolved against Dir, or "" when unset.
func (c *Config) InputPath() string {
	if c.Input == "" || filepath.IsAbs(c.Input) {
		return c.Input
	}
	return filepath.Join(c.Dir(), c.Input)
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Selector) == "" {
		c.Selector = DefaultSelector
	}
}

// Validate checks the fields the widget would reject at Init, so a bad file
// is reported against the file rather than the widget.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Selector) == "" {
		return invalid("selector", "must not be empty", nil)
	}

	max := 1.0
	if !progress.Unset(c.Max) {
		m, err := progress.ValidateMax(c.Max)
		if err != nil {
			return invalid("max", "must be a positive integer", err)
		}
		max = m
	}
	if !progress.Unset(c.Value) {
		if _, err := progress.ValidateStart(c.Value, max); err != nil {
			return invalid("value", "must be a number between 0 and max", err)
		}
	}
	for _, step := range c.Steps {
		if step < 0 {
			return invalid("steps", "must not contain negative deltas", nil)
		}
	}
	return nil
}

func invalid(field, detail string, cause error) error {
	err := errors.New("P022").
		WithInput(field).
		WithDetail(field + " " + detail)
	if cause != nil {
		err = err.Wrap(cause)
	}
	return err
}

// Options converts the widget fields into Init options.
func (c *Config) Options() []progress.Option {
	var opts []progress.Option
	if c.Max != nil {
		opts = append(opts, progress.WithMax(c.Max))
	}
	if c.Value != nil {
		opts = append(opts, progress.WithValue(c.Value))
	}
	if c.Text != "" {
		opts = append(opts, progress.WithText(c.Text))
	}
	if c.Format != "" {
		opts = append(opts, progress.WithFormatter(progress.TemplateFormatter(c.Format)))
	}
	return opts
}
