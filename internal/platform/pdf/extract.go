package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

var (
	// ErrNotPDF is returned when the input does not start with a PDF header.
	ErrNotPDF = errors.New("input is not a pdf document")

	// ErrUnreadable is returned when the document structure cannot be parsed.
	ErrUnreadable = errors.New("pdf document could not be read")

	// ErrNoText is returned when no page yields any text, as with scanned
	// documents.
	ErrNoText = errors.New("pdf document contains no extractable text")
)

var pdfMagic = []byte("%PDF-")

// ExtractText returns the plain text of every page in order, separated by
// blank lines. Pages that fail to decode are skipped.
func ExtractText(r io.ReaderAt, size int64) (text string, err error) {
	header := make([]byte, len(pdfMagic))
	if size < int64(len(pdfMagic)) {
		return "", ErrNotPDF
	}
	if _, err := r.ReadAt(header, 0); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !bytes.Equal(header, pdfMagic) {
		return "", ErrNotPDF
	}

	// The parser panics on some malformed inputs.
	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrUnreadable, p)
		}
	}()

	reader, err := pdflib.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		content = strings.TrimSpace(content)
		if content != "" {
			pages = append(pages, content)
		}
	}

	if len(pages) == 0 {
		return "", ErrNoText
	}
	return strings.Join(pages, "\n\n"), nil
}
