package dpkg

// Paragraph is a binary package stanza as found in DEBIAN/control
// files, Packages indices and the dpkg status database.
type Paragraph struct {
	Package      string
	Version      string
	Architecture string
	Status       string
	Maintainer   string
	Description  string
	Depends      []string `delim:", "`
	PreDepends   []string `control:"Pre-Depends" delim:", "`
	Recommends   []string `delim:", "`
	Suggests     []string `delim:", "`
	Conflicts    []string `delim:", "`
	Breaks       []string `delim:", "`
	Provides     []string `delim:", "`
}
