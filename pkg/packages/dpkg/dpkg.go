package dpkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/djcass44/ipm/pkg/archiveutil"
	"github.com/djcass44/ipm/pkg/packages"
	"github.com/djcass44/ipm/pkg/version"
	"github.com/go-logr/logr"
	"pault.ag/go/debian/control"
)

var (
	ErrMissingName    = errors.New("missing Package field")
	ErrMissingVersion = errors.New("missing Version field")
)

// Read decodes every paragraph in r.
func Read(ctx context.Context, r io.Reader) ([]Paragraph, error) {
	log := logr.FromContextOrDiscard(ctx)
	dec, err := control.NewDecoder(r, nil)
	if err != nil {
		return nil, fmt.Errorf("creating control decoder: %w", err)
	}
	var out []Paragraph
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding control paragraphs: %w", err)
	}
	log.V(1).Info("successfully decoded paragraphs", "count", len(out))
	return out, nil
}

// ReadArchive decodes the control file of a binary package (.deb).
func ReadArchive(ctx context.Context, r io.Reader) ([]Paragraph, error) {
	data, err := archiveutil.ReadDebControl(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("reading control file: %w", err)
	}
	return Read(ctx, bytes.NewReader(data))
}

// Adapt converts a control paragraph into a packages.PackageInfo.
func Adapt(p Paragraph) (packages.PackageInfo, error) {
	if p.Package == "" {
		return packages.PackageInfo{}, ErrMissingName
	}
	if p.Version == "" {
		return packages.PackageInfo{}, fmt.Errorf("%s: %w", p.Package, ErrMissingVersion)
	}
	v, err := version.Parse(p.Version)
	if err != nil {
		return packages.PackageInfo{}, fmt.Errorf("%s: %w", p.Package, err)
	}

	required, err := ParseRelations(p.PreDepends, p.Depends)
	if err != nil {
		return packages.PackageInfo{}, fmt.Errorf("%s: parsing Depends: %w", p.Package, err)
	}
	recommends, err := ParseRelations(p.Recommends, p.Suggests)
	if err != nil {
		return packages.PackageInfo{}, fmt.Errorf("%s: parsing Recommends: %w", p.Package, err)
	}
	conflicts, err := ParseRelations(p.Conflicts, p.Breaks)
	if err != nil {
		return packages.PackageInfo{}, fmt.Errorf("%s: parsing Conflicts: %w", p.Package, err)
	}
	provides, err := ParseRelations(p.Provides)
	if err != nil {
		return packages.PackageInfo{}, fmt.Errorf("%s: parsing Provides: %w", p.Package, err)
	}

	name, email := splitMaintainer(p.Maintainer)
	summary, detail := splitDescription(p.Description)

	return packages.PackageInfo{
		Author: packages.AuthorInfo{
			Name:  name,
			Email: email,
		},
		Name:    p.Package,
		Version: v,
		Description: packages.PackageDescriptions{
			Summary: summary,
			Detail:  detail,
		},
		Relation: packages.PackagesRelations{
			DependRequired:     required,
			RecommendSuggested: recommends,
			BreakConflicts:     packages.NewConflicts(flatten(conflicts)),
			ProvidedVirtuals:   virtuals(flatten(provides)),
		},
	}, nil
}

func flatten(d packages.Dependencies) []packages.PackageRange {
	var out []packages.PackageRange
	for _, group := range d {
		out = append(out, group...)
	}
	return out
}

// virtuals converts Provides entries. Only "(= version)" is
// allowed by policy, anything else is treated as unversioned.
func virtuals(ranges []packages.PackageRange) []packages.PackageVersion {
	out := make([]packages.PackageVersion, len(ranges))
	for i, r := range ranges {
		out[i] = packages.PackageVersion{Name: r.Name}
		if r.Range.Op == version.OpEqual {
			out[i].Version = r.Range.Version
		}
	}
	return out
}

// splitMaintainer splits "Full Name <user@example.org>".
func splitMaintainer(s string) (string, string) {
	s = strings.TrimSpace(s)
	start := strings.LastIndex(s, "<")
	end := strings.LastIndex(s, ">")
	if start < 0 || end < start {
		return s, ""
	}
	return strings.TrimSpace(s[:start]), strings.TrimSpace(s[start+1 : end])
}

// splitDescription separates the synopsis from the extended
// description. A line containing only "." is a blank line.
func splitDescription(s string) (string, string) {
	summary, rest, _ := strings.Cut(s, "\n")
	lines := strings.Split(rest, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
		if lines[i] == "." {
			lines[i] = ""
		}
	}
	return strings.TrimSpace(summary), strings.TrimSpace(strings.Join(lines, "\n"))
}
