package twitchchat

import "testing"

func TestBuildTagIndices(t *testing.T) {
	tags, err := buildTagIndices("badge-info=;badges=broadcaster/1;color=#0000FF;display-name=Test")
	if err != nil {
		t.Fatalf("buildTagIndices: %v", err)
	}
	if tags.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", tags.Len())
	}
	if !tags.Has("color") {
		t.Error("Has(color) = false, want true")
	}
	if got := tags.Get("display-name"); got != "Test" {
		t.Errorf("Get(display-name) = %q, want Test", got)
	}
}

func TestBuildTagIndicesMissingEquals(t *testing.T) {
	_, err := buildTagIndices("novalue;color=blue")
	if err == nil {
		t.Fatal("expected error for missing '='")
	}
	if _, ok := err.(*ExpectedTagError); !ok {
		t.Errorf("err = %T, want *ExpectedTagError", err)
	}
}

func TestTagEscapeRoundTrip(t *testing.T) {
	cases := []string{
		"hello world",
		"a;b",
		"a\\b",
		"line1\r\nline2",
		"no special chars",
	}
	for _, s := range cases {
		got := unescapeTag(escapeTag(s))
		if got != s {
			t.Errorf("unescape(escape(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestTagLookupAfterEscape(t *testing.T) {
	value := "hello; world \\ test"
	escaped := escapeTag(value)
	tags, err := buildTagIndices("msg=" + escaped)
	if err != nil {
		t.Fatalf("buildTagIndices: %v", err)
	}
	if got := tags.GetUnescaped("msg"); got != value {
		t.Errorf("GetUnescaped(msg) = %q, want %q", got, value)
	}
}

func TestTagGetBool(t *testing.T) {
	tags, _ := buildTagIndices("mod=1;subscriber=0;turbo=")
	if !tags.GetBool("mod") {
		t.Error("GetBool(mod) = false, want true")
	}
	if tags.GetBool("subscriber") {
		t.Error("GetBool(subscriber) = true, want false")
	}
	if tags.GetBool("missing") {
		t.Error("GetBool(missing) = true, want false")
	}
}

func TestGetParsed(t *testing.T) {
	tags, _ := buildTagIndices("user-id=12345;mod=1;ratio=0.5;display-name=Test")

	if n, ok := GetParsed[int64](tags, "user-id"); !ok || n != 12345 {
		t.Errorf("GetParsed[int64](user-id) = (%d, %v), want (12345, true)", n, ok)
	}
	if b, ok := GetParsed[bool](tags, "mod"); !ok || !b {
		t.Errorf("GetParsed[bool](mod) = (%v, %v), want (true, true)", b, ok)
	}
	if f, ok := GetParsed[float64](tags, "ratio"); !ok || f != 0.5 {
		t.Errorf("GetParsed[float64](ratio) = (%v, %v), want (0.5, true)", f, ok)
	}
	if s, ok := GetParsed[string](tags, "display-name"); !ok || s != "Test" {
		t.Errorf("GetParsed[string](display-name) = (%q, %v), want (Test, true)", s, ok)
	}
	if _, ok := GetParsed[int64](tags, "missing"); ok {
		t.Error("GetParsed[int64](missing) ok = true, want false")
	}
	if _, ok := GetParsed[int64](tags, "display-name"); ok {
		t.Error("GetParsed[int64](display-name) ok = true, want false for unparsable value")
	}
}

func TestTagGetInt(t *testing.T) {
	tags, _ := buildTagIndices("user-id=12345;bits=notanumber")
	n, ok := tags.GetInt("user-id")
	if !ok || n != 12345 {
		t.Errorf("GetInt(user-id) = (%d, %v), want (12345, true)", n, ok)
	}
	if _, ok := tags.GetInt("bits"); ok {
		t.Error("GetInt(bits) ok = true, want false for unparsable value")
	}
	if _, ok := tags.GetInt("missing"); ok {
		t.Error("GetInt(missing) ok = true, want false")
	}
}
