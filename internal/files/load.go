package files

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/abhisek/gradepad/internal/llm"
)

// ErrUnsupportedType reports a file whose content is neither a
// supported image format nor a PDF.
type ErrUnsupportedType struct {
	Path string
	MIME string
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported file type %s for %q: use a PNG, JPEG, or WebP image, or a PDF", e.MIME, e.Path)
}

var allowedMIMEs = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"application/pdf": true,
}

// Load reads a submission file and sniffs its media type from content,
// not the extension. Only PNG, JPEG, WebP, and PDF are accepted.
func Load(path string) (llm.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return llm.Attachment{}, fmt.Errorf("read %q: %w", path, err)
	}
	if len(data) == 0 {
		return llm.Attachment{}, fmt.Errorf("read %q: file is empty", path)
	}

	mime := sniffMIME(data)
	if !allowedMIMEs[mime] {
		return llm.Attachment{}, &ErrUnsupportedType{Path: path, MIME: mime}
	}

	return llm.Attachment{
		Data:     data,
		MIMEType: mime,
		Filename: filepath.Base(path),
	}, nil
}

// sniffMIME detects the media type from leading bytes. PDF is checked
// explicitly since http.DetectContentType has no PDF signature and
// reports it as text/plain.
func sniffMIME(data []byte) string {
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return "application/pdf"
	}
	return http.DetectContentType(data)
}
