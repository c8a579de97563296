package templates

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{([^}]+)\}`)

// Entry is a single keyed template.
type Entry struct {
	Key  string
	Text string
}

// Set is an insertion-ordered collection of response templates. Order matters:
// when a lookup key is unknown the engine falls back to the first entry, so
// "first" has to be well defined.
type Set struct {
	keys  []string
	texts map[string]string
}

// NewSet builds a Set from entries in the given order. A repeated key updates
// the text but keeps the original position.
func NewSet(entries ...Entry) *Set {
	s := &Set{texts: make(map[string]string, len(entries))}
	for _, e := range entries {
		s.Add(e.Key, e.Text)
	}
	return s
}

// Add inserts a template, or updates it in place when the key already exists.
func (s *Set) Add(key, text string) {
	if _, ok := s.texts[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.texts[key] = text
}

// Lookup returns the template for key.
func (s *Set) Lookup(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	text, ok := s.texts[key]
	return text, ok
}

// First returns the first entry in insertion order.
func (s *Set) First() (Entry, bool) {
	if s == nil || len(s.keys) == 0 {
		return Entry{}, false
	}
	key := s.keys[0]
	return Entry{Key: key, Text: s.texts[key]}, true
}

// Keys returns the template keys in insertion order.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len reports the number of templates in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Render substitutes every {name} placeholder in a single pass. A placeholder
// with no value renders as the literal [name] instead of failing, so a
// malformed template can never abort processing. Substituted values are not
// rescanned.
func Render(template string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := vars[name]; ok {
			return v
		}
		return "[" + name + "]"
	})
}
