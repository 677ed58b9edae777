package history

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j0lvera/eightball/internal/config"
)

func TestNew(t *testing.T) {
	res, err := New(Params{
		Config: &config.Config{HistoryBackend: config.BackendMemory, HistoryCap: 5},
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, res.Store)

	_, err = New(Params{
		Config: &config.Config{HistoryBackend: config.BackendPostgres},
		Logger: zerolog.Nop(),
	})
	assert.Error(t, err)

	_, err = New(Params{
		Config: &config.Config{HistoryBackend: "sqlite"},
		Logger: zerolog.Nop(),
	})
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}
