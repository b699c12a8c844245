package twitchchat

import (
	"strconv"
	"strings"
)

// tagPair is one key/value span inside a tag substring. Both fields are
// zero-copy slices of the frame's raw buffer.
type tagPair struct {
	key string
	val string
}

// TagIndices is the ordered key/value index table built from the tags span
// of a frame. It never allocates beyond the backing slice itself; values are
// returned as slices of the original buffer until GetUnescaped is called.
//
// Lookup walks the table in order and keeps the last match, so a duplicate
// key has last-write-wins semantics exactly as the wire form intends.
type TagIndices struct {
	pairs []tagPair
}

// buildTagIndices scans a tag substring (without the leading '@') and splits
// it on ';' then the first '='. An empty key is rejected with
// ExpectedTagError; a term with no '=' is rejected the same way.
func buildTagIndices(tagBody string) (TagIndices, error) {
	var t TagIndices
	if tagBody == "" {
		return t, nil
	}
	for _, term := range strings.Split(tagBody, ";") {
		if term == "" {
			continue
		}
		eq := strings.IndexByte(term, '=')
		if eq < 0 {
			return TagIndices{}, &ExpectedTagError{Name: term}
		}
		key := term[:eq]
		if key == "" {
			return TagIndices{}, &ExpectedTagError{Name: term}
		}
		t.pairs = append(t.pairs, tagPair{key: key, val: term[eq+1:]})
	}
	return t, nil
}

// Len reports the number of tag pairs in the table, including duplicates.
func (t TagIndices) Len() int { return len(t.pairs) }

// Has reports whether key was present anywhere in the tag span.
func (t TagIndices) Has(key string) bool {
	for _, p := range t.pairs {
		if p.key == key {
			return true
		}
	}
	return false
}

// Get returns the raw, still-escaped value for key, or "" if key was never
// sent. Last write wins among duplicates.
func (t TagIndices) Get(key string) string {
	v, _ := t.lookup(key)
	return v
}

func (t TagIndices) lookup(key string) (string, bool) {
	var (
		val   string
		found bool
	)
	for _, p := range t.pairs {
		if p.key == key {
			val = p.val
			found = true
		}
	}
	return val, found
}

// GetUnescaped returns the unescaped value for key per the IRCv3 escape
// table. Values without a backslash are returned as the original slice with
// no allocation.
func (t TagIndices) GetUnescaped(key string) string {
	v, _ := t.lookup(key)
	return unescapeTag(v)
}

// GetBool returns true for the value "1", or any value whose parse yields
// true (e.g. "true"); it returns false for "0", a missing key, or any other
// value. This matches Twitch's convention of encoding booleans as "0"/"1".
func (t TagIndices) GetBool(key string) bool {
	v, ok := t.lookup(key)
	if !ok {
		return false
	}
	switch v {
	case "1":
		return true
	case "0":
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// GetInt parses the unescaped value for key as a base-10 integer. ok is
// false when the key was missing or the value did not parse; it is never an
// error per the tag-store contract (a parse failure is simply "no value").
func (t TagIndices) GetInt(key string) (n int64, ok bool) {
	v, present := t.lookup(key)
	if !present {
		return 0, false
	}
	n, err := strconv.ParseInt(unescapeTag(v), 10, 64)
	return n, err == nil
}

// tagScalar constrains GetParsed to the value kinds Twitch tags actually
// carry on the wire: booleans, integers, floats (e.g. bits-per-raw-amount),
// and plain strings.
type tagScalar interface {
	~bool | ~int | ~int64 | ~float64 | ~string
}

// GetParsed parses the unescaped value for key as T, returning ok=false if
// the key was missing or did not parse as T. Expressed as a free function,
// not a method, since Go methods cannot carry their own type parameter (the
// same constraint dispatcher.go's Subscribe works around).
func GetParsed[T tagScalar](t TagIndices, key string) (T, bool) {
	var zero T
	v, present := t.lookup(key)
	if !present {
		return zero, false
	}
	v = unescapeTag(v)

	switch any(zero).(type) {
	case bool:
		b, err := parseTagBool(v)
		if err != nil {
			return zero, false
		}
		return any(b).(T), true
	case int:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return zero, false
		}
		return any(int(n)).(T), true
	case int64:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return zero, false
		}
		return any(n).(T), true
	case float64:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return zero, false
		}
		return any(f).(T), true
	case string:
		return any(v).(T), true
	default:
		return zero, false
	}
}

// parseTagBool matches GetBool's "0"/"1" convention for GetParsed[bool].
func parseTagBool(v string) (bool, error) {
	switch v {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return strconv.ParseBool(v)
	}
}

// escapeTag escapes a raw string for inclusion as a tag value on the wire.
func escapeTag(s string) string {
	if !strings.ContainsAny(s, ";\\ \r\n") {
		return s
	}
	return tagEscaper.Replace(s)
}

// unescapeTag resolves the wire escape alphabet back to raw characters. A
// lone trailing backslash is dropped rather than treated as an error.
func unescapeTag(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	return tagUnescaper.Replace(s)
}

var tagEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\:",
	" ", "\\s",
	"\r", "\\r",
	"\n", "\\n",
)

var tagUnescaper = strings.NewReplacer(
	"\\:", ";",
	"\\s", " ",
	"\\\\", "\\",
	"\\r", "\r",
	"\\n", "\n",
	"\\", "",
)
