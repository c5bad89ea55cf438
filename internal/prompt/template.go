package prompt

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Placeholder tokens substituted into templates. Substitution is literal
// text replacement; unmatched placeholders are left as-is.
const (
	PlaceholderName          = "{prod_name}"
	PlaceholderDescription   = "{prod_desclongription}"
	PlaceholderSpecification = "{product_specification}"
)

// defaultTemplate is used when a template file cannot be found anywhere.
const defaultTemplate = `### CEL ###
Chcę, żebyś był ekspertem od copywritingu e-commerce i napisał opis produktu dla {prod_name}.

### OPIS ###
{prod_desclongription}

### SPECYFIKACJA ###
{product_specification}`

// Renderer loads template files and substitutes placeholders.
type Renderer struct {
	dir    string
	logger *slog.Logger
}

// NewRenderer creates a renderer reading templates from dir, falling back to
// the working directory for legacy installs and to a built-in default.
func NewRenderer(dir string, l *slog.Logger) *Renderer {
	return &Renderer{dir: dir, logger: l}
}

// Render loads templateID and substitutes the three placeholders.
// The second return value reports whether the built-in default was used
// because no template file could be found.
func (r *Renderer) Render(templateID, productName, productDescription, specification string) (string, bool) {
	tmpl, usedDefault := r.load(templateID)

	tmpl = strings.ReplaceAll(tmpl, PlaceholderName, productName)
	tmpl = strings.ReplaceAll(tmpl, PlaceholderDescription, productDescription)
	tmpl = strings.ReplaceAll(tmpl, PlaceholderSpecification, specification)

	return tmpl, usedDefault
}

// load resolves the template source: templates directory first, then the
// working directory, then the built-in default. File templates have all
// line breaks removed; they are authored split across lines for readability
// only and the model receives one unbroken string.
func (r *Renderer) load(templateID string) (string, bool) {
	paths := []string{filepath.Join(r.dir, templateID), templateID}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		return stripLineBreaks(string(data)), false
	}

	r.logger.Warn("prompt template not found, using built-in default",
		slog.String("template", templateID),
	)
	return defaultTemplate, true
}

func stripLineBreaks(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
