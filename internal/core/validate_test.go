package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want VerdictKind
	}{
		{name: "empty", raw: "", want: VerdictMissing},
		{name: "whitespace only", raw: "   ", want: VerdictInvalid},
		{name: "tab", raw: "\t", want: VerdictInvalid},
		{name: "plain words", raw: "not a url", want: VerdictInvalid},
		{name: "no scheme", raw: "example.com", want: VerdictInvalid},
		{name: "relative path", raw: "/s/abc", want: VerdictInvalid},
		{name: "missing scheme", raw: "://example.com", want: VerdictInvalid},
		{name: "http without host", raw: "http://", want: VerdictInvalid},
		{name: "space in host", raw: "https://exa mple.com", want: VerdictInvalid},
		{name: "bad port", raw: "http://example.com:port", want: VerdictInvalid},
		{name: "newline only", raw: "\n", want: VerdictInvalid},
		{name: "scheme only", raw: "https:", want: VerdictInvalid},
		{name: "slashes only", raw: "https:///", want: VerdictInvalid},
		{name: "leading space", raw: " https://example.com", want: VerdictValid},
		{name: "trailing space", raw: "https://example.com ", want: VerdictValid},
		{name: "trailing newline", raw: "https://example.com\n", want: VerdictValid},
		{name: "pasted with crlf", raw: "\r\nhttps://example.com\r\n", want: VerdictValid},
		{name: "tab inside host", raw: "https://exa\tmple.com", want: VerdictValid},
		{name: "bad percent escape", raw: "https://example.com/%zz", want: VerdictValid},
		{name: "trailing percent", raw: "https://example.com/100%", want: VerdictValid},
		{name: "control char in path", raw: "https://example.com/a\x01b", want: VerdictValid},
		{name: "no slashes", raw: "https:example.com", want: VerdictValid},
		{name: "upper case no slashes", raw: "HTTPS:example.com", want: VerdictValid},
		{name: "backslashes", raw: `https:\\example.com\a`, want: VerdictValid},
		{name: "extra slashes", raw: "https:////example.com", want: VerdictValid},
		{name: "https", raw: "https://example.com", want: VerdictValid},
		{name: "with path and query", raw: "https://example.com/a/b?x=1#top", want: VerdictValid},
		{name: "with port", raw: "http://localhost:3000/ui", want: VerdictValid},
		{name: "ipv6 host", raw: "http://[::1]:8080/", want: VerdictValid},
		{name: "mailto", raw: "mailto:someone@example.com", want: VerdictValid},
		{name: "custom scheme", raw: "myapp://open/item", want: VerdictValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.raw)
			assert.Equal(t, tt.want, v.Kind, "Validate(%q)", tt.raw)
			if tt.want == VerdictValid {
				require.NotNil(t, v.URL)
			} else {
				assert.Nil(t, v.URL)
			}
		})
	}
}

func TestValidate_KeepsURL(t *testing.T) {
	for _, raw := range []string{
		"https://example.com",
		"https://example.com/a/b?x=1#top",
		"http://localhost:3000/ui",
	} {
		v := Validate(raw)
		require.Equal(t, VerdictValid, v.Kind)
		assert.Equal(t, raw, v.URL.String())
	}
}

func TestValidate_CleansLikeBrowser(t *testing.T) {
	tests := []struct {
		raw  string
		host string
		path string
	}{
		{raw: " https://example.com/a ", host: "example.com", path: "/a"},
		{raw: "https:example.com", host: "example.com", path: ""},
		{raw: `https:\\example.com\a\b`, host: "example.com", path: "/a/b"},
		{raw: "https://example.com/%zz", host: "example.com", path: "/%zz"},
		{raw: "https://example.com/?q=a\\b", host: "example.com", path: "/"},
	}
	for _, tt := range tests {
		v := Validate(tt.raw)
		require.Equal(t, VerdictValid, v.Kind, "Validate(%q)", tt.raw)
		assert.Equal(t, tt.host, v.URL.Host, tt.raw)
		assert.Equal(t, tt.path, v.URL.Path, tt.raw)
	}
	v := Validate("https://example.com/?q=a\\b")
	assert.Equal(t, `q=a\b`, v.URL.RawQuery, "backslashes in the query are kept")
}

func TestValidate_Deterministic(t *testing.T) {
	for _, raw := range []string{"", "   ", "https://example.com", " https:example.com\n"} {
		assert.Equal(t, Validate(raw).Kind, Validate(raw).Kind)
	}
}

func TestVerdictErr(t *testing.T) {
	assert.ErrorIs(t, Validate("").Err(), ErrMissingInput)
	assert.ErrorIs(t, Validate("nope").Err(), ErrInvalidURL)
	assert.NoError(t, Validate("https://example.com").Err())
}

func TestWarningText(t *testing.T) {
	assert.Equal(t, "Please enter a url", WarningMissing.Text())
	assert.Equal(t, "The provided url was invalid", WarningInvalid.Text())
}
