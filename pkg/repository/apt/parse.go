package apt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-logr/logr"
)

const maxLineSize = 1024 * 1024

// stanza is the paragraph currently being read. The parser is
// idle whenever it has no open stanza, so a key is only ever
// remembered while a stanza is open.
type stanza struct {
	info    RepoInfo
	lastKey string
}

type parser struct {
	ctx     context.Context
	current *stanza
	out     []RepoInfo
}

// ParseFile reads the file at path and parses it with Parse.
func ParseFile(ctx context.Context, path string) ([]RepoInfo, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}
	return Parse(logr.NewContext(ctx, logr.FromContextOrDiscard(ctx).WithValues("file", path)), string(data))
}

// Parse reads the contents of a deb822 style sources file and returns
// each stanza in the order it appears.
//
// https://manpages.debian.org/bookworm/apt/sources.list.5.en.html#DEB822-STYLE_FORMAT
func Parse(ctx context.Context, content string) ([]RepoInfo, error) {
	log := logr.FromContextOrDiscard(ctx)
	p := &parser{ctx: ctx}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	var n int
	for scanner.Scan() {
		n++
		if err := p.line(n, scanner.Text()); err != nil {
			log.V(1).Info("failed to parse sources", "error", err.Error())
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = &ParseError{Line: n + 1, Reason: fmt.Sprintf("line exceeds %d bytes", maxLineSize)}
			log.V(1).Info("failed to parse sources", "error", err.Error())
			return nil, err
		}
		return nil, fmt.Errorf("reading sources: %w", err)
	}
	// the final stanza doesn't need a trailing blank line
	p.close()

	log.V(2).Info("parsed sources", "stanzas", len(p.out))
	return p.out, nil
}

func (p *parser) line(n int, line string) error {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	switch {
	case trimmed == "":
		p.close()
		return nil
	case strings.HasPrefix(trimmed, "#"):
		return nil
	case startsWithSpace(line):
		if p.current == nil {
			return &ParseError{Line: n, Text: line, Reason: "indented line without a preceding key"}
		}
		p.current.continuation(strings.TrimSpace(trimmed))
		return nil
	}

	key, value, ok := strings.Cut(trimmed, ":")
	if !ok {
		return &ParseError{Line: n, Text: line, Reason: "invalid key-value pair"}
	}
	if p.current == nil {
		p.current = &stanza{}
	}
	p.current.field(p.ctx, strings.TrimSpace(key), strings.TrimSpace(value))
	return nil
}

// close emits the open stanza, if any, and returns to idle.
func (p *parser) close() {
	if p.current == nil {
		return
	}
	p.out = append(p.out, p.current.info)
	p.current = nil
}

// field handles the first line of a key. List values replace
// whatever an earlier line with the same key set.
func (s *stanza) field(ctx context.Context, key, value string) {
	s.lastKey = key
	if key == FieldSignedBy {
		s.info.SignedBy = &SigningKey{
			Path:    value,
			Content: readKey(ctx, value),
		}
		return
	}
	if list := s.list(key); list != nil {
		*list = strings.Fields(value)
	}
}

// continuation extends the value of the last key.
func (s *stanza) continuation(value string) {
	if s.lastKey == FieldSignedBy {
		s.signedBy(value)
		return
	}
	if list := s.list(s.lastKey); list != nil {
		*list = append(*list, strings.Fields(value)...)
	}
}

// signedBy extends Signed-By. With no path on the first line the
// value is an embedded key, folded one line at a time with a lone "."
// standing for an empty line. Otherwise the path is extended and
// Content keeps the bytes of the key file on the first line.
func (s *stanza) signedBy(value string) {
	key := s.info.SignedBy
	if key.Path != "" {
		key.Path += " " + value
		return
	}
	if value == "." {
		value = ""
	}
	key.Content = append(key.Content, value+"\n"...)
}

// list returns the list field for key, or nil if the key
// isn't one we keep.
func (s *stanza) list(key string) *[]string {
	switch key {
	case FieldTypes:
		return &s.info.Types
	case FieldURIs:
		return &s.info.URIs
	case FieldSuites:
		return &s.info.Suites
	case FieldComponents:
		return &s.info.Components
	case FieldArchitectures:
		return &s.info.Architectures
	default:
		return nil
	}
}

// readKey loads the keyring referenced by Signed-By. A missing or
// unreadable keyring is not an error, the key is left empty.
func readKey(ctx context.Context, path string) []byte {
	if path == "" {
		return []byte{}
	}
	log := logr.FromContextOrDiscard(ctx).WithValues("path", path)
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		log.V(1).Info("unable to read signing key", "error", err.Error())
		return []byte{}
	}
	log.V(3).Info("read signing key", "size", len(data))
	return data
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}
