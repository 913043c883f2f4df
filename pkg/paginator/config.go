package paginator

import "strconv"

// Defaults applied whenever a config value is absent or invalid.
const (
	DefaultItemsPerPage = 3
	DefaultPrevLabel    = "Prev"
	DefaultNextLabel    = "Next"

	// DefaultDisplayCount is the page-number window size used until a
	// resize signal provides one.
	DefaultDisplayCount = 5
)

// Config holds the presentational knobs of a [Paginator]. Invalid values
// never survive: every setter silently normalizes to a default, so a Config
// obtained from [NewConfig] or mutated through options is always valid.
type Config struct {
	PrevLabel    string `json:"prevLabel,omitempty"    jsonschema:"title=Previous Label"`
	NextLabel    string `json:"nextLabel,omitempty"    jsonschema:"title=Next Label"`
	ItemsPerPage int    `json:"itemsPerPage,omitempty" jsonschema:"title=Items Per Page"`
}

// Option mutates a [Config].
type Option func(*Config)

// NewConfig returns a [Config] with defaults, modified by the given options.
func NewConfig(opts ...Option) Config {
	c := Config{
		ItemsPerPage: DefaultItemsPerPage,
		PrevLabel:    DefaultPrevLabel,
		NextLabel:    DefaultNextLabel,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithItemsPerPage sets the page size. Values below 1 fall back to
// [DefaultItemsPerPage].
func WithItemsPerPage(n int) Option {
	return func(c *Config) {
		c.SetItemsPerPage(n)
	}
}

// WithRawItemsPerPage parses the page size from a string, e.g. a CLI flag or
// attribute value. Unparseable input falls back to [DefaultItemsPerPage].
func WithRawItemsPerPage(raw string) Option {
	return func(c *Config) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			n = DefaultItemsPerPage
		}

		c.SetItemsPerPage(n)
	}
}

// WithPrevLabel sets the label of the previous-page control. An empty label
// falls back to [DefaultPrevLabel].
func WithPrevLabel(s string) Option {
	return func(c *Config) {
		c.SetPrevLabel(s)
	}
}

// WithNextLabel sets the label of the next-page control. An empty label
// falls back to [DefaultNextLabel].
func WithNextLabel(s string) Option {
	return func(c *Config) {
		c.SetNextLabel(s)
	}
}

func (c *Config) SetItemsPerPage(n int) {
	if n < 1 {
		n = DefaultItemsPerPage
	}

	c.ItemsPerPage = n
}

func (c *Config) SetPrevLabel(s string) {
	if s == "" {
		s = DefaultPrevLabel
	}

	c.PrevLabel = s
}

func (c *Config) SetNextLabel(s string) {
	if s == "" {
		s = DefaultNextLabel
	}

	c.NextLabel = s
}

// EnsureDefaults normalizes a Config that was populated externally, e.g.
// decoded from YAML.
func (c *Config) EnsureDefaults() {
	c.SetItemsPerPage(c.ItemsPerPage)
	c.SetPrevLabel(c.PrevLabel)
	c.SetNextLabel(c.NextLabel)
}
