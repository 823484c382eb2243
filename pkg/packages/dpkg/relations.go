package dpkg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/djcass44/ipm/pkg/packages"
	"github.com/djcass44/ipm/pkg/version"
)

// matches "name[:arch] [(constraint)]", anything after that
// (architecture lists, build profiles) is ignored
var regexpRelation = regexp.MustCompile(`^(?P<name>[^\s(\[<:]+)(?::\S+)?\s*(?:\((?P<constraint>[^)]*)\))?`)

// ParseRelations parses the values of relationship fields such as
// "Depends" into groups of alternatives. The fields are concatenated
// in the order given.
//
// https://www.debian.org/doc/debian-policy/ch-relationships.html
func ParseRelations(fields ...[]string) (packages.Dependencies, error) {
	var out packages.Dependencies
	for _, entries := range fields {
		// values may have been folded across lines, so we
		// split them again ourselves
		for _, entry := range strings.Split(strings.Join(entries, ","), ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			group, err := parseAlternatives(entry)
			if err != nil {
				return nil, err
			}
			out = append(out, group)
		}
	}
	return out, nil
}

func parseAlternatives(s string) (packages.Alternatives, error) {
	var out packages.Alternatives
	for _, alt := range strings.Split(s, "|") {
		alt = strings.TrimSpace(alt)
		matches := regexpRelation.FindStringSubmatch(alt)
		if len(matches) == 0 {
			return nil, fmt.Errorf("unable to extract package name: '%s'", s)
		}
		r, err := version.ParseRange(matches[regexpRelation.SubexpIndex("constraint")])
		if err != nil {
			return nil, fmt.Errorf("parsing constraint of '%s': %w", alt, err)
		}
		out = append(out, packages.PackageRange{
			Name:  matches[regexpRelation.SubexpIndex("name")],
			Range: r,
		})
	}
	return out, nil
}
