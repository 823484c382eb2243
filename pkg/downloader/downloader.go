package downloader

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-getter"
)

type Downloader struct {
	cacheDir string
}

func NewDownloader(cacheDir string) (*Downloader, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}
	return &Downloader{cacheDir: cacheDir}, nil
}

// IsRemote reports whether src needs to be downloaded before
// it can be read.
func IsRemote(src string) bool {
	uri, err := url.Parse(src)
	if err != nil {
		return false
	}
	return uri.Scheme != "" && uri.Scheme != "file" && uri.Host != ""
}

// Fetch returns a local path for src. Local paths are returned as-is,
// anything else is downloaded into the cache directory.
func (d *Downloader) Fetch(ctx context.Context, src string) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("src", src)
	if !IsRemote(src) {
		log.V(2).Info("using local file")
		return filepath.Clean(src), nil
	}

	uri, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("parsing url: %w", err)
	}

	// download the file to a predictable location so that
	// we can avoid repeated downloads
	dst := filepath.Join(d.cacheDir, filepath.Base(uri.Path))
	log.V(1).Info("downloading file", "dst", dst)

	client := &getter.Client{
		Ctx:             ctx,
		Src:             src,
		Dst:             dst,
		Mode:            getter.ClientModeFile,
		DisableSymlinks: true,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("downloading '%s': %w", src, err)
	}
	return dst, nil
}
