package ipak

import "github.com/djcass44/ipm/pkg/version"

// PackageData is the metadata record of an ipak project.
type PackageData struct {
	About    AboutData    `json:"about"`
	Relation RelationData `json:"relation"`
}

type AboutData struct {
	Author  AuthorAboutData  `json:"author"`
	Package PackageAboutData `json:"package"`
}

type AuthorAboutData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PackageAboutData struct {
	Name        string          `json:"name"`
	Version     version.Version `json:"version"`
	Description string          `json:"description"`
}

type RelationData struct {
	Depend     [][]PackageRange `json:"depend,omitempty"`
	Recommends [][]PackageRange `json:"recommends,omitempty"`
	Suggests   [][]PackageRange `json:"suggests,omitempty"`
	Conflicts  []PackageRange   `json:"conflicts,omitempty"`
	Virtuals   []PackageVersion `json:"virtuals,omitempty"`
}

type PackageRange struct {
	Name  string        `json:"name"`
	Range version.Range `json:"range"`
}

type PackageVersion struct {
	Name    string          `json:"name"`
	Version version.Version `json:"version"`
}
