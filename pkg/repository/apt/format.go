package apt

import (
	"strings"
)

// Format writes descriptors back out as deb822 stanzas. Empty fields
// are omitted. A key read from disk is written as its Signed-By path,
// an embedded key is written back inline.
func Format(infos []RepoInfo) string {
	sb := strings.Builder{}
	for i := range infos {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(infos[i].String())
	}
	return sb.String()
}

// String returns the stanza for a single descriptor.
func (r *RepoInfo) String() string {
	sb := strings.Builder{}
	writeList(&sb, FieldTypes, r.Types)
	writeList(&sb, FieldURIs, r.URIs)
	writeList(&sb, FieldSuites, r.Suites)
	writeList(&sb, FieldComponents, r.Components)
	writeList(&sb, FieldArchitectures, r.Architectures)
	writeSignedBy(&sb, r.SignedBy)
	return sb.String()
}

// writeSignedBy writes the key path, or the embedded key folded
// across continuation lines when there is no path.
func writeSignedBy(sb *strings.Builder, key *SigningKey) {
	switch {
	case key == nil:
		return
	case key.Path != "":
		sb.WriteString(FieldSignedBy + ": " + key.Path + "\n")
	case len(key.Content) > 0:
		sb.WriteString(FieldSignedBy + ":\n")
		for _, line := range strings.Split(strings.TrimSuffix(string(key.Content), "\n"), "\n") {
			if strings.TrimSpace(line) == "" {
				line = "."
			}
			sb.WriteString(" " + line + "\n")
		}
	}
}

func writeList(sb *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		return
	}
	sb.WriteString(key + ": " + strings.Join(values, " ") + "\n")
}
