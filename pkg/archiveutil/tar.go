package archiveutil

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/go-logr/logr"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Decompress wraps r in a reader for the compression scheme implied
// by the file extension of name. Unknown extensions are returned as-is.
func Decompress(name string, r io.Reader) (io.ReadCloser, error) {
	switch path.Ext(name) {
	case ".gz":
		return gzip.NewReader(r)
	case ".xz":
		reader, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(reader), nil
	case ".zst":
		reader, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return reader.IOReadCloser(), nil
	case ".tar":
		return io.NopCloser(r), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", name)
	}
}

// ReadTarFile returns the contents of the regular file called name
// from a tar archive.
func ReadTarFile(ctx context.Context, r io.Reader, name string) ([]byte, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("name", name)
	tr := tar.NewReader(r)

	want := cleanName(name)
	for {
		header, err := tr.Next()
		switch {
		case err == io.EOF:
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		case err != nil:
			log.Error(err, "failed to read file from archive")
			return nil, err
		case header == nil:
			continue
		}
		if header.Typeflag != tar.TypeReg || cleanName(header.Name) != want {
			log.V(5).Info("skipping entry", "entry", header.Name)
			continue
		}
		log.V(4).Info("found file", "size", header.Size)
		return io.ReadAll(tr)
	}
}

func cleanName(s string) string {
	return strings.TrimPrefix(path.Clean("/"+s), "/")
}
