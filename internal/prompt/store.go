package prompt

import (
	"os"
	"path/filepath"

	apperrors "github.com/LechDutkiewicz/gsport-ai/pkg/errors"
)

// KnownTemplates lists every template name the editor may read or write.
// Names outside this list are rejected, which also rules out path traversal.
var KnownTemplates = []string{
	TemplateBike99Spokes,
	TemplateBikeScott,
	TemplateBikeWithSpecs,
	TemplateBike,
	TemplateMicro,
	TemplateLeatt,
	TemplateNotBikeWithSpecs,
	TemplateNotBike,
	TemplateShortBike,
	TemplateShortNotBike,
}

// TemplateInfo describes one template for the editor listing.
type TemplateInfo struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
}

// Store provides read/write access to the template files for the editor.
type Store struct {
	dir string
}

// NewStore creates a template store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) isKnown(name string) bool {
	for _, n := range KnownTemplates {
		if n == name {
			return true
		}
	}
	return false
}

// List returns every known template with its on-disk presence.
func (s *Store) List() []TemplateInfo {
	infos := make([]TemplateInfo, 0, len(KnownTemplates))
	for _, name := range KnownTemplates {
		_, err := os.Stat(filepath.Join(s.dir, name))
		infos = append(infos, TemplateInfo{Name: name, Exists: err == nil})
	}
	return infos
}

// Get reads the raw content of a known template.
func (s *Store) Get(name string) (string, error) {
	if !s.isKnown(name) {
		return "", apperrors.InvalidInput("unknown template name: " + name)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.NotFound("template", name)
		}
		return "", apperrors.Internal(err)
	}
	return string(data), nil
}

// Put writes the raw content of a known template, creating the templates
// directory if absent.
func (s *Store) Put(name, content string) error {
	if !s.isKnown(name) {
		return apperrors.InvalidInput("unknown template name: " + name)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return apperrors.Internal(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o644); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
