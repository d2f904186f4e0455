package export

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// ErrExists is returned by DirSaver when the target file already exists and
// Overwrite is false.
var ErrExists = errors.New("file already exists")

// DirSaver writes exported files into Dir.
type DirSaver struct {
	Dir       string
	Overwrite bool
}

// Save writes content to Dir/fileName.
func (s DirSaver) Save(fileName, content, _ string) error {
	if fileName != filepath.Base(fileName) {
		return fmt.Errorf("invalid file name %q", fileName)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", s.Dir, err)
	}

	path := filepath.Join(s.Dir, fileName)
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !s.Overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ResponseSaver streams the export to an HTTP client as an attachment.
type ResponseSaver struct {
	W http.ResponseWriter
}

// Save writes the download headers and body.
func (s ResponseSaver) Save(fileName, content, mimeType string) error {
	h := s.W.Header()
	h.Set("Content-Type", mimeType+"; charset=utf-8")
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	h.Set("Content-Length", strconv.Itoa(len(content)))
	h.Set("X-Content-Type-Options", "nosniff")
	s.W.WriteHeader(http.StatusOK)
	_, err := s.W.Write([]byte(content))
	return err
}
