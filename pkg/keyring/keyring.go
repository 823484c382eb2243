package keyring

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
)

var armorHeader = []byte("-----BEGIN PGP")

// Fingerprints returns the primary key fingerprint of every key in an
// OpenPGP keyring, as upper-case hex. Both binary (.gpg) and
// ASCII-armored (.asc) keyrings are accepted. Nothing is verified.
func Fingerprints(content []byte) ([]string, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}
	entities, err := read(content)
	if err != nil {
		return nil, fmt.Errorf("reading keyring: %w", err)
	}
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		if e.PrimaryKey == nil {
			continue
		}
		out = append(out, strings.ToUpper(fmt.Sprintf("%x", e.PrimaryKey.Fingerprint)))
	}
	return out, nil
}

func read(content []byte) (openpgp.EntityList, error) {
	if bytes.Contains(content, armorHeader) {
		return openpgp.ReadArmoredKeyRing(bytes.NewReader(content))
	}
	return openpgp.ReadKeyRing(bytes.NewReader(content))
}
