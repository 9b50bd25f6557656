package entity

import "sort"

// ContextValue is either plain text or an inline image.
type ContextValue struct {
	Text  string
	Image *InlineImage
}

func TextValue(s string) ContextValue {
	return ContextValue{Text: s}
}

func ImageValue(img *InlineImage) ContextValue {
	return ContextValue{Image: img}
}

func (v ContextValue) IsImage() bool {
	return v.Image != nil
}

// FlatContext maps placeholder names to the values used to render one document.
type FlatContext map[string]ContextValue

func (c FlatContext) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Text returns the text of key, or "" for images and absent keys.
func (c FlatContext) Text(key string) string {
	return c[key].Text
}
