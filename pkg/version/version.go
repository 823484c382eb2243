package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	debversion "github.com/knqyf263/go-deb-version"
)

// Version is a Debian-ordered package version.
// The zero value is the "unknown" version.
type Version struct {
	v   debversion.Version
	raw string
}

// Parse parses a version string using Debian ordering rules.
//
// https://www.debian.org/doc/debian-policy/ch-controlfields.html#version
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	v, err := debversion.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("parsing version '%s': %w", s, err)
	}
	return Version{v: v, raw: s}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) IsZero() bool {
	return v.raw == ""
}

func (v Version) String() string {
	return v.raw
}

// Compare returns -1, 0 or 1. The zero Version sorts before everything else.
func (v Version) Compare(o Version) int {
	switch {
	case v.IsZero() && o.IsZero():
		return 0
	case v.IsZero():
		return -1
	case o.IsZero():
		return 1
	}
	return v.v.Compare(o.v)
}

func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.raw), nil
}

func (v *Version) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*v = Version{}
		return nil
	}
	out, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// ErrUnquoted is returned when a version is given as a JSON number.
// Numbers lose their exact form (1.10 becomes 1.1), so versions
// must always be written as strings.
var ErrUnquoted = errors.New("version must be a quoted string")

func (v *Version) UnmarshalJSON(data []byte) error {
	text, err := unquote(data)
	if err != nil {
		return err
	}
	return v.UnmarshalText(text)
}

func unquote(data []byte) ([]byte, error) {
	if string(data) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: got %s", ErrUnquoted, data)
	}
	return []byte(s), nil
}
