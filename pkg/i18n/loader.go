package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir returns an Option that loads translations from JSON files in
// an fs.FS. File convention: {lang}.json at the fs root.
//
// Example structure:
//
//	en.json
//	de.json
func WithJSONDir(fsys fs.FS) Option {
	return func(s *Store) error {
		return loadDir(s, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that loads translations from YAML files in
// an fs.FS. File convention: {lang}.yaml or {lang}.yml at the fs root.
//
// Example structure:
//
//	en.yaml
//	fr.yml
func WithYAMLDir(fsys fs.FS) Option {
	return func(s *Store) error {
		return loadDir(s, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadDir(s *Store, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))

		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		lang := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		if lang == "" {
			return fmt.Errorf("%w: %q has no language name", ErrInvalidFile, filePath)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var translations map[string]any
		if err := unmarshal(data, &translations); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		for key, value := range flattenTranslations(translations, "") {
			s.translations[buildKey(lang, key)] = value
		}

		return nil
	})
}
