package cmd

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootLogging(t *testing.T) {
	t.Run("verbosity", func(t *testing.T) {
		require.NoError(t, command.ParseFlags([]string{"-v", "2"}))
		command.SetContext(context.TODO())
		command.PersistentPreRun(command, nil)

		log, err := logr.FromContext(command.Context())
		require.NoError(t, err)
		assert.True(t, log.V(2).Enabled())
		assert.False(t, log.V(3).Enabled())
	})
	t.Run("quiet", func(t *testing.T) {
		require.NoError(t, command.ParseFlags([]string{"--quiet"}))
		command.SetContext(context.TODO())
		command.PersistentPreRun(command, nil)

		log, err := logr.FromContext(command.Context())
		require.NoError(t, err)
		assert.False(t, log.Enabled())
	})
}
