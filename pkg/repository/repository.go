package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/djcass44/ipm/pkg/repository/apt"
	"github.com/go-logr/logr"
)

const sourcesGlob = "*.sources"

// NewApt wraps a parsed apt stanza.
func NewApt(name, url string, info apt.RepoInfo) Repository {
	return Repository{
		Name: name,
		URL:  url,
		Kind: KindApt,
		Apt:  &info,
	}
}

// FromApt converts the stanzas of a single sources file. Each
// repository is named after the file and the stanza index.
func FromApt(source string, infos []apt.RepoInfo) []Repository {
	base := filepath.Base(source)
	out := make([]Repository, len(infos))
	for i := range infos {
		var url string
		if len(infos[i].URIs) > 0 {
			url = infos[i].URIs[0]
		}
		out[i] = NewApt(fmt.Sprintf("%s#%d", base, i), url, infos[i])
	}
	return out
}

// List collects the repositories declared in the given paths. Directories
// are searched for ".sources" files. Files that can't be read or parsed
// are skipped so that one broken file doesn't hide the others.
func List(ctx context.Context, paths []string) ([]Repository, error) {
	log := logr.FromContextOrDiscard(ctx)

	files, err := expand(ctx, paths)
	if err != nil {
		return nil, err
	}

	var out []Repository
	for _, path := range files {
		infos, err := apt.ParseFile(ctx, path)
		if err != nil {
			log.Error(err, "failed to parse sources file", "path", path)
			continue
		}
		log.V(1).Info("found repositories", "path", path, "count", len(infos))
		out = append(out, FromApt(path, infos)...)
	}
	return out, nil
}

// expand resolves directories into the sources files they contain.
// Paths that don't exist are ignored.
func expand(ctx context.Context, paths []string) ([]string, error) {
	log := logr.FromContextOrDiscard(ctx)

	var files []string
	for _, path := range paths {
		path = filepath.Clean(path)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				log.V(2).Info("skipping missing path", "path", path)
				continue
			}
			return nil, fmt.Errorf("checking path '%s': %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(path, sourcesGlob))
		if err != nil {
			return nil, fmt.Errorf("searching '%s': %w", path, err)
		}
		log.V(2).Info("searched directory", "path", path, "matches", len(matches))
		files = append(files, matches...)
	}
	return files, nil
}
