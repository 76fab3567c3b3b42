package resume

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted for upload.
const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedFormat is returned for any declared type other than PDF or
// DOCX. The caller decides how to surface it; extraction never degrades to
// silently empty text.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")

// ExtractText converts an uploaded document into plain text, keyed by the
// declared MIME type.
func ExtractText(data []byte, mimeType string) (string, error) {
	switch mimeType {
	case MimePDF:
		return extractTextFromPDF(data)
	case MimeDocx:
		return extractTextFromDocx(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return NormalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()
	// GetContent returns the raw document.xml body; flatten it to text.
	return StripXMLTags(doc.Editable().GetContent()), nil
}

var reTags = regexp.MustCompile(`<[^>]+>`)

// StripXMLTags converts OOXML body markup to plain text: paragraph ends
// become newlines, tabs are preserved, every other tag is dropped.
func StripXMLTags(xml string) string {
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, " ")
	return NormalizeWhitespace(txt)
}

// NormalizeWhitespace collapses whitespace runs while preserving line breaks.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
