package document

import (
	"errors"
	"strings"
	"testing"
)

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		declared string
		filename string
		want     string
	}{
		{declared: "text/plain; charset=utf-8", filename: "cv", want: MIMEText},
		{declared: "application/pdf", filename: "cv.bin", want: MIMEPDF},
		{declared: "application/octet-stream", filename: "CV.PDF", want: MIMEPDF},
		{declared: "", filename: "resume.docx", want: MIMEDocx},
		{declared: "", filename: "notes.txt", want: MIMEText},
		{declared: "image/png", filename: "photo.png", want: "image/png"},
	}
	for _, tt := range tests {
		if got := DetectContentType(tt.declared, tt.filename); got != tt.want {
			t.Fatalf("DetectContentType(%q,%q)=%q want %q", tt.declared, tt.filename, got, tt.want)
		}
	}
}

func TestExtract_PlainText(t *testing.T) {
	got, err := Extract(MIMEText, []byte("Python developer"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "Python developer" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestExtract_Unsupported(t *testing.T) {
	_, err := Extract("image/png", []byte{0x89})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestExtract_CorruptPDF(t *testing.T) {
	if _, err := Extract(MIMEPDF, []byte("not a pdf")); err == nil {
		t.Fatalf("expected error for corrupt pdf")
	}
}

func TestExtract_CorruptDocx(t *testing.T) {
	if _, err := Extract(MIMEDocx, []byte("not a zip")); err == nil {
		t.Fatalf("expected error for corrupt docx")
	}
}

func TestDocxText(t *testing.T) {
	xml := `<w:document><w:body><w:p><w:r><w:t>Python &amp; SQL</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Docker</w:t><w:tab/><w:t>Flask</w:t></w:r></w:p></w:body></w:document>`
	got := strings.Fields(docxText(xml))
	want := []string{"Python", "&", "SQL", "Docker", "Flask"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("docxText=%v want %v", got, want)
	}
}
