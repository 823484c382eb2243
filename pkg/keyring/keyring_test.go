package keyring

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntity(t *testing.T) *openpgp.Entity {
	entity, err := openpgp.NewEntity("Test", "test", "test@example.com", nil)
	require.NoError(t, err)
	return entity
}

func TestFingerprints(t *testing.T) {
	entity := newEntity(t)
	expected := strings.ToUpper(fmt.Sprintf("%x", entity.PrimaryKey.Fingerprint))

	t.Run("binary", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, entity.Serialize(&buf))

		out, err := Fingerprints(buf.Bytes())
		assert.NoError(t, err)
		assert.EqualValues(t, []string{expected}, out)
	})
	t.Run("armored", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
		require.NoError(t, err)
		require.NoError(t, entity.Serialize(w))
		require.NoError(t, w.Close())

		out, err := Fingerprints(buf.Bytes())
		assert.NoError(t, err)
		assert.EqualValues(t, []string{expected}, out)
	})
	t.Run("multiple keys", func(t *testing.T) {
		other := newEntity(t)

		var buf bytes.Buffer
		require.NoError(t, entity.Serialize(&buf))
		require.NoError(t, other.Serialize(&buf))

		out, err := Fingerprints(buf.Bytes())
		assert.NoError(t, err)
		assert.Len(t, out, 2)
	})
	t.Run("empty", func(t *testing.T) {
		out, err := Fingerprints(nil)
		assert.NoError(t, err)
		assert.Empty(t, out)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := Fingerprints([]byte("not a key"))
		assert.Error(t, err)
	})
}
