package document

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MIMEText = "text/plain"
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupported = errors.New("unsupported document type")

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTab          = regexp.MustCompile(`<w:tab/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
	xmlEntities      = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")
)

// DetectContentType resolves the document type from the declared content type,
// falling back to the file extension when the declaration is missing or generic.
func DetectContentType(declared, filename string) string {
	if mt, _, err := mime.ParseMediaType(declared); err == nil {
		switch mt {
		case MIMEText, MIMEPDF, MIMEDocx:
			return mt
		}
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return MIMEText
	case ".pdf":
		return MIMEPDF
	case ".docx":
		return MIMEDocx
	}
	return strings.TrimSpace(declared)
}

func Extract(contentType string, data []byte) (string, error) {
	switch contentType {
	case MIMEText:
		return string(data), nil
	case MIMEPDF:
		return extractPDF(data)
	case MIMEDocx:
		return extractDocx(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, contentType)
	}
}

func extractPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed streams
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pt, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		b.WriteString(pt)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	return docxText(doc.Editable().GetContent()), nil
}

// docxText flattens WordprocessingML into plain text, one line per paragraph.
func docxText(xml string) string {
	s := docxParagraphEnd.ReplaceAllString(xml, "\n")
	s = docxTab.ReplaceAllString(s, " ")
	s = xmlTag.ReplaceAllString(s, "")
	return xmlEntities.Replace(s)
}
