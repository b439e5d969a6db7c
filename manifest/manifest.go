// Package manifest describes what the extension contributes to the editor:
// the languages it serves and the file extensions that identify them.
package manifest

import (
	_ "embed"
	"net/url"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/teranos/fluxar-ls/errors"
)

//go:embed manifest.toml
var embedded []byte

// Manifest is the extension manifest
type Manifest struct {
	Name        string     `toml:"name"`
	DisplayName string     `toml:"display_name"`
	Description string     `toml:"description"`
	Publisher   string     `toml:"publisher"`
	Version     string     `toml:"version"`
	Languages   []Language `toml:"languages"`
}

// Language is a contributed language
type Language struct {
	ID         string   `toml:"id"`
	Aliases    []string `toml:"aliases"`
	Extensions []string `toml:"extensions"`
}

// Default returns the manifest compiled into the binary.
func Default() *Manifest {
	m, err := Parse(embedded)
	if err != nil {
		// The embedded manifest is covered by tests
		panic(err)
	}
	return m
}

// Parse decodes and validates a TOML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidManifest, err.Error())
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every language has an id and at least one extension.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return errors.Wrap(errors.ErrInvalidManifest, "name is required")
	}
	if len(m.Languages) == 0 {
		return errors.Wrap(errors.ErrInvalidManifest, "at least one language is required")
	}
	for i, lang := range m.Languages {
		if lang.ID == "" {
			return errors.Wrapf(errors.ErrInvalidManifest, "languages[%d]: id is required", i)
		}
		if len(lang.Extensions) == 0 {
			return errors.Wrapf(errors.ErrInvalidManifest, "language %q: at least one extension is required", lang.ID)
		}
		for _, ext := range lang.Extensions {
			if !strings.HasPrefix(ext, ".") {
				return errors.Wrapf(errors.ErrInvalidManifest, "language %q: extension %q must start with a dot", lang.ID, ext)
			}
		}
	}
	return nil
}

// Language returns the contributed language with the given id.
func (m *Manifest) Language(id string) (Language, bool) {
	for _, lang := range m.Languages {
		if lang.ID == id {
			return lang, true
		}
	}
	return Language{}, false
}

// LanguageForURI maps a document URI or path to a contributed language id
// by file extension. Matching is case-insensitive.
func (m *Manifest) LanguageForURI(uri string) (string, bool) {
	p := uri
	if u, err := url.Parse(uri); err == nil && u.Path != "" {
		p = u.Path
	}
	ext := strings.ToLower(path.Ext(p))
	if ext == "" {
		return "", false
	}
	for _, lang := range m.Languages {
		for _, e := range lang.Extensions {
			if strings.ToLower(e) == ext {
				return lang.ID, true
			}
		}
	}
	return "", false
}
