package format

import (
	"encoding/json"

	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"
	goyaml "github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// IsUUID reports whether v is a string holding a parseable UUID.
func IsUUID(v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsSemVer reports whether v is a string holding a strict semantic
// version (no leading "v", all three parts present).
func IsSemVer(v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	_, err := semver.StrictNewVersion(s)
	return err == nil
}

// IsGlob reports whether v is a string holding a well-formed doublestar
// glob pattern.
func IsGlob(v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	return doublestar.ValidatePattern(s)
}

// IsJSON reports whether v holds a well-formed JSON document.
func IsJSON(v any) bool {
	switch s := v.(type) {
	case string:
		return json.Valid([]byte(s))
	case []byte:
		return json.Valid(s)
	}
	return false
}

// IsYAML reports whether v holds a well-formed YAML document.
func IsYAML(v any) bool {
	b, ok := asBytes(v)
	if !ok {
		return false
	}
	var out any
	return goyaml.Unmarshal(b, &out) == nil
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}

func asBytes(v any) ([]byte, bool) {
	switch s := v.(type) {
	case string:
		return []byte(s), true
	case []byte:
		return s, true
	}
	return nil, false
}
