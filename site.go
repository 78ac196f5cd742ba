package obfeed

import "context"

// Site is a blog to convert, as listed in the configuration file.
type Site struct {
	URL  string `yaml:"url" json:"url"`
	Name string `yaml:"name" json:"name"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "site URL required")
	}
	if s.Name == "" {
		return Errorf(EINVALID, "site name required for %s", s.URL)
	}
	return nil
}

// Config is the run configuration read from the configuration file.
type Config struct {
	Sites     []Site `yaml:"sites" json:"sites"`
	UserAgent string `yaml:"userAgent" json:"userAgent"`

	// Optional settings; the CLI fills defaults for empty values.
	Timezone  string `yaml:"timezone,omitempty" json:"timezone,omitempty"`
	Format    Format `yaml:"format,omitempty" json:"format,omitempty"`
	OutputDir string `yaml:"output,omitempty" json:"output,omitempty"`
}

// Validate returns an error if the configuration cannot drive a run.
func (c *Config) Validate() error {
	if len(c.Sites) == 0 {
		return Errorf(EINVALID, "at least one site required")
	}
	for i := range c.Sites {
		if err := c.Sites[i].Validate(); err != nil {
			return err
		}
	}
	if c.UserAgent == "" {
		return Errorf(EINVALID, "user agent required")
	}
	if c.Format != "" {
		if _, err := ParseFormat(string(c.Format)); err != nil {
			return err
		}
	}
	return nil
}

// ConfigLoader reads the run configuration.
type ConfigLoader interface {
	// Load reads and validates the configuration at path.
	// Returns ENOTFOUND if the file does not exist.
	Load(ctx context.Context, path string) (*Config, error)
}
