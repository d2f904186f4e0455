// Package export turns a recipe's source variant into something the user
// can take away: a downloaded file, a file on disk or clipboard text.
package export

import (
	"fmt"
	"regexp"

	"github.com/ziadkadry99/animdocs/internal/catalog"
)

// MIMEType is the content type of every exported source file.
const MIMEType = "text/plain"

// ErrUnsupportedLanguage aliases the catalog sentinel so callers of this
// package need not import catalog just to compare errors.
var ErrUnsupportedLanguage = catalog.ErrUnsupportedLanguage

var whitespace = regexp.MustCompile(`\s+`)

// Saver performs the final "save as" step. Implementations decide where the
// bytes go (a browser download, a directory on disk, a test buffer).
type Saver interface {
	Save(fileName, content, mimeType string) error
}

// SaverFunc adapts a plain function to the Saver interface.
type SaverFunc func(fileName, content, mimeType string) error

// Save calls f.
func (f SaverFunc) Save(fileName, content, mimeType string) error {
	return f(fileName, content, mimeType)
}

// GetSource returns the recipe's source text for lang.
func GetSource(r catalog.Recipe, lang catalog.Language) (string, error) {
	return r.Source(lang)
}

// SuggestFileName derives the download name from the recipe name with all
// whitespace removed, e.g. "Progress Bar" -> "ProgressBar.tsx".
func SuggestFileName(r catalog.Recipe, lang catalog.Language) (string, error) {
	if !lang.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(lang))
	}
	return whitespace.ReplaceAllString(r.Name, "") + "." + lang.Extension(), nil
}

// ExportToFile hands the source for lang to saver exactly once and returns
// the file name it used. A saver error is returned as is.
func ExportToFile(r catalog.Recipe, lang catalog.Language, saver Saver) (string, error) {
	content, err := GetSource(r, lang)
	if err != nil {
		return "", err
	}
	name, err := SuggestFileName(r, lang)
	if err != nil {
		return "", err
	}
	if err := saver.Save(name, content, MIMEType); err != nil {
		return name, err
	}
	return name, nil
}
