package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path"
	"strings"

	"github.com/radhian/remittance-docgen/entity"
)

const (
	contentTypesPart = "[Content_Types].xml"
	imageRelType     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	emptyRels        = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`
	preservedTextOpen = `<w:t xml:space="preserve">`
	lineBreak         = `</w:t><w:br/>` + preservedTextOpen
)

var imageContentTypes = map[string]string{
	"png": "image/png",
	"jpg": "image/jpeg",
	"gif": "image/gif",
}

// Render fills every placeholder found in values and returns the new
// archive. Placeholders without a value are left untouched. The template
// itself is not modified.
func (t *Template) Render(values map[string]entity.ContextValue) ([]byte, error) {
	r := &renderer{
		files: make(map[string][]byte, len(t.files)),
		names: append([]string(nil), t.names...),
		media: make(map[*entity.InlineImage]string),
	}
	for name, content := range t.files {
		r.files[name] = content
	}

	for _, part := range t.parts {
		out, err := r.renderPart(part, values)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", part, err)
		}
		r.files[part] = out
	}

	return writeArchive(r.files, r.names)
}

type renderer struct {
	files    map[string][]byte
	names    []string
	media    map[*entity.InlineImage]string
	mediaSeq int
	relSeq   int
	drawSeq  int
}

func (r *renderer) renderPart(part string, values map[string]entity.ContextValue) ([]byte, error) {
	var renderErr error
	rels := make(map[*entity.InlineImage]string)

	out := placeholderPattern.ReplaceAllFunc(r.files[part], func(m []byte) []byte {
		name := string(placeholderPattern.FindSubmatch(m)[1])
		v, ok := values[name]
		if !ok || renderErr != nil {
			return m
		}
		if !v.IsImage() {
			return escapeText(v.Text)
		}

		rid, ok := rels[v.Image]
		if !ok {
			var err error
			if rid, err = r.relate(part, v.Image); err != nil {
				renderErr = err
				return m
			}
			rels[v.Image] = rid
		}
		return r.drawing(rid, v.Image)
	})
	if renderErr != nil {
		return nil, renderErr
	}

	return bytes.ReplaceAll(out, []byte("<w:t>"), []byte(preservedTextOpen)), nil
}

// relate stores img as a media file (once per archive) and adds an image
// relationship to part's relationship file.
func (r *renderer) relate(part string, img *entity.InlineImage) (string, error) {
	target, ok := r.media[img]
	if !ok {
		ext := img.Extension()
		if err := r.ensureContentType(ext); err != nil {
			return "", err
		}
		r.mediaSeq++
		target = fmt.Sprintf("media/docgen_signature%d.%s", r.mediaSeq, ext)
		r.addFile("word/"+target, img.Data)
		r.media[img] = target
	}

	relsPath := path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
	rels, ok := r.files[relsPath]
	if !ok {
		rels = []byte(emptyRels)
		r.addFile(relsPath, rels)
	}

	closing := []byte("</Relationships>")
	idx := bytes.LastIndex(rels, closing)
	if idx < 0 {
		return "", fmt.Errorf("%w: malformed %s", ErrInvalidTemplate, relsPath)
	}

	r.relSeq++
	rid := fmt.Sprintf("rIdDocgen%d", r.relSeq)
	rel := fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="%s"/>`, rid, imageRelType, target)

	updated := make([]byte, 0, len(rels)+len(rel))
	updated = append(updated, rels[:idx]...)
	updated = append(updated, rel...)
	updated = append(updated, rels[idx:]...)
	r.files[relsPath] = updated
	return rid, nil
}

func (r *renderer) ensureContentType(ext string) error {
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return fmt.Errorf("unsupported image format %q", ext)
	}

	types, ok := r.files[contentTypesPart]
	if !ok {
		return fmt.Errorf("%w: %s missing", ErrInvalidTemplate, contentTypesPart)
	}
	if strings.Contains(strings.ToLower(string(types)), `extension="`+ext+`"`) {
		return nil
	}

	closing := []byte("</Types>")
	idx := bytes.LastIndex(types, closing)
	if idx < 0 {
		return fmt.Errorf("%w: malformed %s", ErrInvalidTemplate, contentTypesPart)
	}

	def := fmt.Sprintf(`<Default Extension="%s" ContentType="%s"/>`, ext, contentType)
	updated := make([]byte, 0, len(types)+len(def))
	updated = append(updated, types[:idx]...)
	updated = append(updated, def...)
	updated = append(updated, types[idx:]...)
	r.files[contentTypesPart] = updated
	return nil
}

func (r *renderer) addFile(name string, content []byte) {
	if _, ok := r.files[name]; !ok {
		r.names = append(r.names, name)
	}
	r.files[name] = content
}

// drawing closes the current run, emits an inline picture run and reopens a
// text run for whatever followed the placeholder.
func (r *renderer) drawing(rid string, img *entity.InlineImage) []byte {
	r.drawSeq++
	id := 1000 + r.drawSeq
	return []byte(fmt.Sprintf(
		`</w:t></w:r><w:r><w:drawing>`+
			`<wp:inline xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" distT="0" distB="0" distL="0" distR="0">`+
			`<wp:extent cx="%[1]d" cy="%[2]d"/>`+
			`<wp:docPr id="%[3]d" name="Signature %[3]d"/>`+
			`<a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">`+
			`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
			`<pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
			`<pic:nvPicPr><pic:cNvPr id="%[3]d" name="signature.%[4]s"/><pic:cNvPicPr/></pic:nvPicPr>`+
			`<pic:blipFill><a:blip xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" r:embed="%[5]s"/>`+
			`<a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
			`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%[1]d" cy="%[2]d"/></a:xfrm>`+
			`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
			`</pic:pic></a:graphicData></a:graphic></wp:inline>`+
			`</w:drawing></w:r><w:r>%[6]s`,
		img.WidthEMU, img.HeightEMU, id, img.Extension(), rid, preservedTextOpen,
	))
}

// escapeText escapes s for a w:t element and turns newlines into line breaks.
func escapeText(s string) []byte {
	var buf bytes.Buffer
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			buf.WriteString(lineBreak)
		}
		_ = xml.EscapeText(&buf, []byte(line))
	}
	return buf.Bytes()
}
