package apt

// Field names recognised in a deb822 sources stanza.
const (
	FieldTypes         = "Types"
	FieldURIs          = "URIs"
	FieldSuites        = "Suites"
	FieldComponents    = "Components"
	FieldArchitectures = "Architectures"
	FieldSignedBy      = "Signed-By"
)

// RepoInfo describes a single stanza of a deb822 ".sources" file.
type RepoInfo struct {
	// Architectures is empty when the stanza doesn't restrict them.
	// It is never inferred from the host.
	Architectures []string
	Types         []string
	URIs          []string
	Suites        []string
	Components    []string
	SignedBy      *SigningKey
}

// SigningKey associates a repository with the keyring that is
// expected to have signed it.
type SigningKey struct {
	// Path is the value given to Signed-By
	Path string
	// Content holds the bytes read from Path when the stanza
	// was parsed, followed by any key material embedded in
	// continuation lines. It is empty if the file could not be read.
	Content []byte
}
