package catalog

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Fallback      string   `yaml:"fallback"`
	DefaultRegion string   `yaml:"default_region"`
	Locales       []Locale `yaml:"locales"`
}

// WithYAML returns an Option that loads the catalog definition from YAML.
//
// Example file:
//
//	fallback: en-ch
//	default_region: ch
//	locales:
//	  - slug: en-ch
//	    label: English
//	    region_label: Switzerland
//	    recommendation:
//	      body: "This site is also available in {{locale}}."
//	      call_to_action: "View in {{locale}}"
//
// Options given earlier or later on New still apply; explicit WithFallback
// and WithDefaultRegion take precedence over file values.
func WithYAML(data []byte) Option {
	return func(b *builder) error {
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidYAML, err)
		}

		b.locales = append(b.locales, file.Locales...)
		if b.fallback == "" {
			b.fallback = file.Fallback
		}
		if b.defaultRegion == "" {
			b.defaultRegion = file.DefaultRegion
		}
		return nil
	}
}

// WithYAMLFile returns an Option that loads the catalog from a file in an
// fs.FS, typically an embed.FS shipped with the application.
func WithYAMLFile(fsys fs.FS, name string) Option {
	return func(b *builder) error {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}
		return WithYAML(data)(b)
	}
}
