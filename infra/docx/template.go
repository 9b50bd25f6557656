// Package docx reads a Word (.docx) template, lists the {{ name }}
// placeholders it declares and renders it with a set of values.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
)

const mainPart = "word/document.xml"

var (
	placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)
	contentPartPattern = regexp.MustCompile(`^word/(document|header[0-9]*|footer[0-9]*|footnotes|endnotes)\.xml$`)
)

// ErrInvalidTemplate is returned for archives that are not Word documents.
var ErrInvalidTemplate = errors.New("invalid docx template")

type Template struct {
	names []string
	files map[string][]byte
	parts []string
}

func Open(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse reads a docx archive. Placeholders that Word split over several runs
// are joined back into one run.
func Parse(data []byte) (*Template, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	t := &Template{files: make(map[string][]byte, len(zr.File))}
	for _, f := range zr.File {
		content, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, f.Name, err)
		}
		t.names = append(t.names, f.Name)

		if contentPartPattern.MatchString(f.Name) {
			content = joinSplitPlaceholders(content)
			t.parts = append(t.parts, f.Name)
		}
		t.files[f.Name] = content
	}

	if _, ok := t.files[mainPart]; !ok {
		return nil, fmt.Errorf("%w: %s missing", ErrInvalidTemplate, mainPart)
	}
	return t, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Placeholders returns the sorted distinct placeholder names of every
// content part.
func (t *Template) Placeholders() []string {
	seen := make(map[string]struct{})
	for _, part := range t.parts {
		for _, m := range placeholderPattern.FindAllSubmatch(t.files[part], -1) {
			seen[string(m[1])] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// joinSplitPlaceholders finds placeholders in the text content of an XML part
// and removes the markup Word inserted inside them.
func joinSplitPlaceholders(xml []byte) []byte {
	var (
		text []byte
		pos  []int
	)
	inTag := false
	for i, b := range xml {
		switch {
		case b == '<':
			inTag = true
		case b == '>':
			inTag = false
		case !inTag:
			text = append(text, b)
			pos = append(pos, i)
		}
	}

	matches := placeholderPattern.FindAllIndex(text, -1)
	if len(matches) == 0 {
		return xml
	}

	out := xml
	for i := len(matches) - 1; i >= 0; i-- {
		start, end := pos[matches[i][0]], pos[matches[i][1]-1]+1
		if bytes.IndexByte(out[start:end], '<') < 0 {
			continue
		}
		joined := make([]byte, 0, len(out))
		joined = append(joined, out[:start]...)
		joined = append(joined, text[matches[i][0]:matches[i][1]]...)
		joined = append(joined, out[end:]...)
		out = joined
	}
	return out
}

func writeArchive(files map[string][]byte, names []string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(files[name]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
