// Package docxtest builds small Word documents and images for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

// Paragraph wraps runs in a paragraph.
func Paragraph(runs ...string) string {
	var buf bytes.Buffer
	buf.WriteString("<w:p>")
	for _, r := range runs {
		buf.WriteString("<w:r><w:t>")
		buf.WriteString(r)
		buf.WriteString("</w:t></w:r>")
	}
	buf.WriteString("</w:p>")
	return buf.String()
}

// Document returns a minimal word/document.xml holding body.
func Document(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`
}

// Build returns a docx archive whose document body is body. extra adds or
// replaces archive entries.
func Build(t testing.TB, body string, extra map[string]string) []byte {
	t.Helper()

	files := map[string]string{
		"[Content_Types].xml":          contentTypes,
		"word/_rels/document.xml.rels": documentRels,
		"word/document.xml":            Document(body),
	}
	for k, v := range extra {
		files[k] = v
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{"[Content_Types].xml", "word/_rels/document.xml.rels", "word/document.xml"} {
		writeEntry(t, zw, name, files[name])
		delete(files, name)
	}
	for name, content := range files {
		writeEntry(t, zw, name, content)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close docx: %v", err)
	}
	return buf.Bytes()
}

// WriteFile builds a docx into dir and returns its path.
func WriteFile(t testing.TB, dir, name, body string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, Build(t, body, nil), 0o644); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	return p
}

// ReadEntry returns one entry of a docx archive.
func ReadEntry(t testing.TB, archive []byte, name string) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("open docx: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return buf.String()
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

// PNG encodes a blank w x h image.
func PNG(t testing.TB, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.Black)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func writeEntry(t testing.TB, zw *zip.Writer, name, content string) {
	t.Helper()

	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
