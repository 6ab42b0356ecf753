// Package extract resolves the raw note source of an upload request into
// plain text: PDF files page by page, text files as UTF-8, or the literal
// form field verbatim.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	rpdf "rsc.io/pdf"
)

// MinContentLength is the minimum trimmed length of usable source text.
const MinContentLength = 50

var (
	ErrMissingContent  = errors.New("no note text or file supplied")
	ErrContentTooShort = errors.New("note text is too short to generate study material")
	ErrExtraction      = errors.New("could not extract text from upload")
)

// FromUpload resolves the source text for a request. An uploaded file wins
// over the literal text field; the literal field is used verbatim. The result
// must be at least MinContentLength characters after trimming whitespace.
func FromUpload(fileData []byte, contentType, literalText string) (string, error) {
	var text string
	switch {
	case len(fileData) > 0:
		var err error
		text, err = fromFile(fileData, contentType)
		if err != nil {
			return "", err
		}
	case literalText != "":
		text = literalText
	default:
		return "", ErrMissingContent
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < MinContentLength {
		return "", fmt.Errorf("%w: got %d characters, need at least %d", ErrContentTooShort, n, MinContentLength)
	}
	return text, nil
}

func fromFile(data []byte, contentType string) (string, error) {
	if strings.Contains(contentType, "pdf") {
		return fromPDF(data)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: file is not valid UTF-8 text", ErrExtraction)
	}
	return string(data), nil
}

// fromPDF concatenates the extracted text of every page. Pages with no
// extractable text contribute nothing.
func fromPDF(data []byte) (text string, err error) {
	// rsc.io/pdf panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed PDF: %v", ErrExtraction, r)
		}
	}()

	doc, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	pages := make([]string, 0, doc.NumPage())
	for i := 1; i <= doc.NumPage(); i++ {
		pages = append(pages, pageText(doc.Page(i)))
	}
	return joinPages(pages), nil
}

func pageText(page rpdf.Page) string {
	if page.V.IsNull() {
		return ""
	}
	var sb strings.Builder
	for _, t := range page.Content().Text {
		sb.WriteString(t.S)
	}
	return sb.String()
}

func joinPages(pages []string) string {
	kept := pages[:0]
	for _, p := range pages {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
