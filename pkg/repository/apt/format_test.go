package apt

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	in := []RepoInfo{
		{
			Types:      []string{"deb", "deb-src"},
			URIs:       []string{"https://a.example/repo", "https://mirror.a.example/repo"},
			Suites:     []string{"stable", "stable-updates"},
			Components: []string{"main"},
			SignedBy: &SigningKey{
				Path: "/nonexistent/keyring.gpg",
			},
		},
		{
			Types:         []string{"deb"},
			URIs:          []string{"https://b.example/repo"},
			Suites:        []string{"testing"},
			Components:    []string{"main", "contrib", "non-free"},
			Architectures: []string{"amd64"},
		},
	}

	out := Format(in)
	t.Logf("formatted:\n%s", out)

	repos, err := Parse(ctx, out)
	require.NoError(t, err)
	require.Len(t, repos, len(in))

	for i := range in {
		assert.EqualValues(t, in[i].Types, repos[i].Types)
		assert.EqualValues(t, in[i].URIs, repos[i].URIs)
		assert.EqualValues(t, in[i].Suites, repos[i].Suites)
		assert.EqualValues(t, in[i].Components, repos[i].Components)
		assert.EqualValues(t, len(in[i].Architectures), len(repos[i].Architectures))
	}
	require.NotNil(t, repos[0].SignedBy)
	assert.EqualValues(t, "/nonexistent/keyring.gpg", repos[0].SignedBy.Path)
	assert.Nil(t, repos[1].SignedBy)
	assert.EqualValues(t, []string{"amd64"}, repos[1].Architectures)
}

func TestFormat_EmbeddedKey(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	repos, err := ParseFile(ctx, "./testdata/inline-key.sources")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	require.NotNil(t, repos[0].SignedBy)
	require.NotEmpty(t, repos[0].SignedBy.Content)

	out := Format(repos)
	assert.Contains(t, out, "Signed-By:\n -----BEGIN PGP PUBLIC KEY BLOCK-----\n .\n")

	again, err := Parse(ctx, out)
	require.NoError(t, err)
	require.Len(t, again, 1)
	require.NotNil(t, again[0].SignedBy)
	assert.Empty(t, again[0].SignedBy.Path)
	assert.EqualValues(t, string(repos[0].SignedBy.Content), string(again[0].SignedBy.Content))
	assert.EqualValues(t, repos[0].Components, again[0].Components)
}

func TestRepoInfo_String(t *testing.T) {
	r := &RepoInfo{
		Types:  []string{"deb"},
		URIs:   []string{"https://a.example/repo"},
		Suites: []string{"stable"},
	}
	assert.EqualValues(t, "Types: deb\nURIs: https://a.example/repo\nSuites: stable\n", r.String())
}
