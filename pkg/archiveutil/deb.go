package archiveutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/go-logr/logr"
)

var ErrNotFound = errors.New("file not found in archive")

const (
	debControlPrefix = "control.tar"
	debControlFile   = "control"
)

// ReadDebControl extracts the control file from a binary package
// (.deb) archive.
func ReadDebControl(ctx context.Context, r io.Reader) ([]byte, error) {
	log := logr.FromContextOrDiscard(ctx)
	rd := ar.NewReader(r)

	for {
		header, err := rd.Next()
		switch {
		case err == io.EOF:
			return nil, fmt.Errorf("%w: %s", ErrNotFound, debControlPrefix)
		case err != nil:
			log.Error(err, "failed to read file from archive")
			return nil, err
		case header == nil:
			continue
		}
		// GNU ar terminates names with a slash
		name := strings.TrimSuffix(header.Name, "/")
		if !strings.HasPrefix(name, debControlPrefix) {
			log.V(5).Info("skipping archive member", "name", name)
			continue
		}
		log.V(1).Info("found control archive", "name", name, "size", header.Size)
		dec, err := Decompress(name, io.LimitReader(rd, header.Size))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return ReadTarFile(ctx, dec, debControlFile)
	}
}
