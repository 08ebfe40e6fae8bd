package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ErrUnsupportedFormat means neither the declared media type nor the
	// filename suffix matched a recognized document kind.
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, doc and docx are allowed")
	// ErrEmptyContent means extraction succeeded but yielded only whitespace.
	ErrEmptyContent = errors.New("document contains no extractable text")
)

// Kind is a recognized upload format.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindDoc
	KindDocx
)

// DetectKind resolves the document kind from the declared media type OR the
// filename suffix. Either one matching is enough: uploads are frequently
// mislabeled by browsers.
func DetectKind(filename, mimeType string) Kind {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	// strip parameters like "; charset=utf-8"
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch mt {
	case "application/pdf":
		return KindPDF
	case "application/msword":
		return KindDoc
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return KindDocx
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".doc":
		return KindDoc
	case ".docx":
		return KindDocx
	}
	return KindUnknown
}

// Extract returns plain text from a whole in-memory document buffer.
// Documents are assumed to fit in memory; there is no streaming path.
func Extract(filename, mimeType string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch DetectKind(filename, mimeType) {
	case KindPDF:
		text, err = extractPDF(data)
	case KindDocx:
		text, err = extractDocx(data)
	case KindDoc:
		text, err = extractDoc(data)
	default:
		return "", ErrUnsupportedFormat
	}
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyContent
	}
	return text, nil
}

func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Convert paragraph boundaries to newlines (very naive but effective).
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	// Remove all XML tags.
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

// extractDoc salvages readable text from a legacy Word binary. There is no
// real .doc decoder here: printable ASCII and CJK runes are kept and the rest
// is blanked out, which is good enough for the resume corpus we see.
func extractDoc(data []byte) (string, error) {
	runes := []rune(string(data))
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch {
		case r >= 0x20 && r <= 0x7e:
			out = append(out, r)
		case r >= 0x4e00 && r <= 0x9fff:
			out = append(out, r)
		case r == '\n' || r == '：' || r == '，' || r == '。' || r == '、':
			out = append(out, r)
		default:
			out = append(out, ' ')
		}
	}
	return normalizeWhitespace(string(out)), nil
}

func normalizeWhitespace(s string) string {
	// Collapse excessive whitespace and trim
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ", " ")
	// Preserve newlines but collapse runs
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
