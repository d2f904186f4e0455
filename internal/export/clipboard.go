package export

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/ziadkadry99/animdocs/internal/catalog"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the host clipboard (pbcopy, xclip, wl-copy, ...).
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// CopySource puts the source for lang on cb and reports whether the copy
// happened. Failures are logged and reported as false; they never abort the
// caller.
func CopySource(cb Clipboard, r catalog.Recipe, lang catalog.Language, log *zap.Logger) bool {
	src, err := GetSource(r, lang)
	if err != nil {
		log.Error("copy: bad language", zap.String("id", r.ID), zap.Error(err))
		return false
	}
	if err := cb.WriteAll(src); err != nil {
		log.Warn("failed to copy code",
			zap.String("id", r.ID),
			zap.String("language", string(lang)),
			zap.Error(err),
		)
		return false
	}
	return true
}
