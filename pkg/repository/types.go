package repository

import "github.com/djcass44/ipm/pkg/repository/apt"

type Kind string

const (
	KindApt Kind = "apt"
)

// Repository is a package repository in a form that doesn't
// depend on the package manager that declared it.
type Repository struct {
	// Name uniquely identifies the repository
	Name string
	// URL is the base URL of the repository
	URL  string
	Kind Kind
	// Apt is set when Kind is KindApt
	Apt *apt.RepoInfo
}

// DefaultSources are the locations searched for deb822 sources
// when nothing else is configured.
var DefaultSources = []string{
	"/etc/apt/sources.list.d",
}
