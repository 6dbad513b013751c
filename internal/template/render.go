package template

import "strings"

// A Binding pairs a placeholder name with its replacement value.
type Binding struct {
	Name  string
	Value string
}

// Render substitutes every {name} occurrence in text with the corresponding
// binding's value. Substitution is a single literal pass per binding, so a
// value containing another placeholder's syntax is never re-substituted.
// Placeholders without a binding pass through untouched.
func Render(text string, bindings []Binding) string {
	for _, b := range bindings {
		text = strings.ReplaceAll(text, "{"+b.Name+"}", b.Value)
	}
	return text
}
