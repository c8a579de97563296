package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOrdering(t *testing.T) {
	t.Run("first entry follows insertion order", func(t *testing.T) {
		s := NewSet(
			Entry{Key: "greeting", Text: "Hello {name}"},
			Entry{Key: "farewell", Text: "Bye {name}"},
		)

		first, ok := s.First()
		assert.True(t, ok)
		assert.Equal(t, "greeting", first.Key)
		assert.Equal(t, []string{"greeting", "farewell"}, s.Keys())
	})

	t.Run("duplicate key updates in place", func(t *testing.T) {
		s := NewSet(
			Entry{Key: "greeting", Text: "Hello"},
			Entry{Key: "farewell", Text: "Bye"},
		)
		s.Add("greeting", "Hi there")

		text, ok := s.Lookup("greeting")
		assert.True(t, ok)
		assert.Equal(t, "Hi there", text)
		assert.Equal(t, []string{"greeting", "farewell"}, s.Keys())
	})

	t.Run("lookup miss", func(t *testing.T) {
		s := NewSet(Entry{Key: "greeting", Text: "Hello"})

		_, ok := s.Lookup("unknown")
		assert.False(t, ok)
	})

	t.Run("empty set", func(t *testing.T) {
		s := NewSet()

		_, ok := s.First()
		assert.False(t, ok)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("nil set is safe", func(t *testing.T) {
		var s *Set

		assert.Equal(t, 0, s.Len())
		_, ok := s.First()
		assert.False(t, ok)
		_, ok = s.Lookup("anything")
		assert.False(t, ok)
	})
}

func TestRender(t *testing.T) {
	t.Run("fills known placeholders", func(t *testing.T) {
		got := Render("Hello {name}, your {item} is ready.", map[string]string{
			"name": "Ada",
			"item": "report",
		})
		assert.Equal(t, "Hello Ada, your report is ready.", got)
	})

	t.Run("missing placeholder renders bracketed literal", func(t *testing.T) {
		got := Render("Hello {name}, see {details}.", map[string]string{"name": "Ada"})
		assert.Equal(t, "Hello Ada, see [details].", got)
	})

	t.Run("repeated placeholder filled everywhere", func(t *testing.T) {
		got := Render("{name} and {name} again", map[string]string{"name": "Ada"})
		assert.Equal(t, "Ada and Ada again", got)
	})

	t.Run("substituted values are not rescanned", func(t *testing.T) {
		got := Render("{a}", map[string]string{"a": "{b}", "b": "oops"})
		assert.Equal(t, "{b}", got)
	})

	t.Run("no braces survive besides the fallback form", func(t *testing.T) {
		got := Render("start {x} middle {y} end", nil)
		assert.Equal(t, "start [x] middle [y] end", got)
		assert.NotContains(t, got, "{")
		assert.NotContains(t, got, "}")
	})
}

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, []string{
		KeyAccessIssue,
		KeyBillingInquiry,
		KeyFeatureRequest,
		KeyTechnicalIssue,
		KeyAmbiguousRequest,
	}, s.Keys())

	first, ok := s.First()
	assert.True(t, ok)
	assert.Equal(t, KeyAccessIssue, first.Key)

	for _, key := range s.Keys() {
		text, ok := s.Lookup(key)
		assert.True(t, ok)
		assert.Contains(t, text, "{name}", "template %s should address the customer", key)
		assert.True(t, strings.Contains(text, "Baguette"), "template %s should carry the team signature", key)
	}
}
