package notion

import "strings"

// FieldKind is the Notion property type of a record field.
type FieldKind string

const (
	KindTitle    FieldKind = "title"
	KindRichText FieldKind = "rich_text"
	KindPhone    FieldKind = "phone_number"
	KindSelect   FieldKind = "select"
	KindFiles    FieldKind = "files"
)

type RichText struct {
	PlainText string `json:"plain_text"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type FileURL struct {
	URL string `json:"url"`
}

type FileObject struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	File     *FileURL `json:"file,omitempty"`
	External *FileURL `json:"external,omitempty"`
}

// Property is a page property value as returned by the API. Only the member
// matching Type is set.
type Property struct {
	Type        string        `json:"type"`
	Title       []RichText    `json:"title,omitempty"`
	RichText    []RichText    `json:"rich_text,omitempty"`
	PhoneNumber *string       `json:"phone_number,omitempty"`
	Select      *SelectOption `json:"select,omitempty"`
	Files       []FileObject  `json:"files,omitempty"`
}

type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

type PropertySchema struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type Database struct {
	ID         string                    `json:"id"`
	Properties map[string]PropertySchema `json:"properties"`
}

type queryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

var decoders = map[FieldKind]func(Property) string{
	KindTitle:    func(p Property) string { return joinPlainText(p.Title) },
	KindRichText: func(p Property) string { return joinPlainText(p.RichText) },
	KindPhone:    decodePhone,
	KindSelect:   decodeSelect,
	KindFiles:    decodeFirstFileURL,
}

var encoders = map[FieldKind]func(string) interface{}{
	KindTitle:    func(s string) interface{} { return map[string]interface{}{"title": textBlocks(s)} },
	KindRichText: func(s string) interface{} { return map[string]interface{}{"rich_text": textBlocks(s)} },
	KindPhone:    func(s string) interface{} { return map[string]interface{}{"phone_number": s} },
	KindSelect:   encodeSelect,
	KindFiles:    encodeExternalFile,
}

// Decode turns a property into its plain string value. Unknown kinds and
// absent properties decode to "".
func Decode(kind FieldKind, p Property) string {
	if dec, ok := decoders[kind]; ok {
		return dec(p)
	}
	return ""
}

// Encode wraps s in the API shape of kind, or returns nil for unknown kinds.
func Encode(kind FieldKind, s string) interface{} {
	if enc, ok := encoders[kind]; ok {
		return enc(s)
	}
	return nil
}

func joinPlainText(blocks []RichText) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(b.PlainText)
	}
	return sb.String()
}

func decodePhone(p Property) string {
	if p.PhoneNumber == nil {
		return ""
	}
	return *p.PhoneNumber
}

func decodeSelect(p Property) string {
	if p.Select == nil {
		return ""
	}
	return p.Select.Name
}

func decodeFirstFileURL(p Property) string {
	for _, f := range p.Files {
		switch {
		case f.File != nil && f.File.URL != "":
			return f.File.URL
		case f.External != nil && f.External.URL != "":
			return f.External.URL
		}
	}
	return ""
}

func textBlocks(s string) []interface{} {
	if s == "" {
		return []interface{}{}
	}
	return []interface{}{
		map[string]interface{}{"text": map[string]interface{}{"content": s}},
	}
}

func encodeSelect(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return map[string]interface{}{"select": nil}
	}
	return map[string]interface{}{"select": map[string]interface{}{"name": s}}
}

func encodeExternalFile(url string) interface{} {
	if url == "" {
		return map[string]interface{}{"files": []interface{}{}}
	}
	return map[string]interface{}{"files": []interface{}{
		map[string]interface{}{
			"name":     "signature",
			"type":     "external",
			"external": map[string]interface{}{"url": url},
		},
	}}
}
