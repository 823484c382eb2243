package packages

import (
	"github.com/djcass44/ipm/pkg/version"
)

// PackageInfo is the canonical description of a package, regardless
// of the format it was originally described in.
type PackageInfo struct {
	Author      AuthorInfo          `json:"author"`
	Name        string              `json:"name"`
	Version     version.Version     `json:"version"`
	Description PackageDescriptions `json:"description"`
	Relation    PackagesRelations   `json:"relation"`
}

type AuthorInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PackageDescriptions struct {
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
}

// PackagesRelations describes how a package relates to others.
type PackagesRelations struct {
	// DependRequired must all be satisfied for the package to be installed.
	DependRequired Dependencies `json:"dependRequired"`
	// RecommendSuggested holds recommendations followed by suggestions.
	// The two strengths are not distinguished.
	RecommendSuggested Dependencies `json:"recommendSuggested"`
	// BreakConflicts lists packages that must not be installed alongside.
	BreakConflicts Conflicts `json:"breakConflicts"`
	// ProvidedVirtuals are the virtual packages this package satisfies.
	ProvidedVirtuals []PackageVersion `json:"providedVirtuals"`
}

// PackageRange names a package and the versions of it that are acceptable.
type PackageRange struct {
	Name  string        `json:"name"`
	Range version.Range `json:"range"`
}

// PackageVersion names an exact version of a package.
type PackageVersion struct {
	Name    string          `json:"name"`
	Version version.Version `json:"version"`
}

// Alternatives is satisfied when any one of its members is.
type Alternatives []PackageRange

// Dependencies is satisfied when every group of Alternatives is.
type Dependencies []Alternatives

// Exclusion is a single conflict group. Unlike Alternatives, each
// member is forbidden on its own.
type Exclusion []PackageRange

// Conflicts is a list of conflict groups.
type Conflicts []Exclusion
