package ipak

import (
	"context"
	"fmt"
	"io"

	"github.com/djcass44/ipm/pkg/packages"
	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/yaml"
)

// Read decodes a YAML or JSON ipak metadata record.
func Read(ctx context.Context, r io.Reader) (*PackageData, error) {
	log := logr.FromContextOrDiscard(ctx)

	var data PackageData
	if err := yaml.NewYAMLOrJSONDecoder(r, 4).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding ipak metadata: %w", err)
	}
	log.V(2).Info("decoded ipak metadata", "name", data.About.Package.Name, "version", data.About.Package.Version.String())
	return &data, nil
}

// Adapt converts an ipak record into a packages.PackageInfo.
//
// The summary is the package name because ipak has no separate
// short description.
func Adapt(data PackageData) packages.PackageInfo {
	return packages.PackageInfo{
		Author: packages.AuthorInfo{
			Name:  data.About.Author.Name,
			Email: data.About.Author.Email,
		},
		Name:    data.About.Package.Name,
		Version: data.About.Package.Version,
		Description: packages.PackageDescriptions{
			Summary: data.About.Package.Name,
			Detail:  data.About.Package.Description,
		},
		Relation: adaptRelation(data.Relation),
	}
}

func adaptRelation(rel RelationData) packages.PackagesRelations {
	// recommendations always come before suggestions
	recommendSuggested := make(packages.Dependencies, 0, len(rel.Recommends)+len(rel.Suggests))
	recommendSuggested = append(recommendSuggested, adaptGroups(rel.Recommends)...)
	recommendSuggested = append(recommendSuggested, adaptGroups(rel.Suggests)...)

	conflicts := make([]packages.PackageRange, len(rel.Conflicts))
	for i := range rel.Conflicts {
		conflicts[i] = adaptRange(rel.Conflicts[i])
	}

	virtuals := make([]packages.PackageVersion, len(rel.Virtuals))
	for i := range rel.Virtuals {
		virtuals[i] = packages.PackageVersion{
			Name:    rel.Virtuals[i].Name,
			Version: rel.Virtuals[i].Version,
		}
	}

	return packages.PackagesRelations{
		DependRequired:     adaptGroups(rel.Depend),
		RecommendSuggested: recommendSuggested,
		BreakConflicts:     packages.NewConflicts(conflicts),
		ProvidedVirtuals:   virtuals,
	}
}

func adaptGroups(groups [][]PackageRange) packages.Dependencies {
	out := make(packages.Dependencies, len(groups))
	for i, group := range groups {
		alts := make(packages.Alternatives, len(group))
		for j := range group {
			alts[j] = adaptRange(group[j])
		}
		out[i] = alts
	}
	return out
}

func adaptRange(r PackageRange) packages.PackageRange {
	return packages.PackageRange{
		Name:  r.Name,
		Range: r.Range,
	}
}
