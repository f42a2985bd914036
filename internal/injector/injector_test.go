package injector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-topdown-arena/internal/config"
)

func TestInitializeGame(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "error"

	g, err := InitializeGame(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, g.Logger())
	assert.Same(t, cfg, g.Config())
}

func TestInitializeGameBadLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"

	_, err := InitializeGame(context.Background(), cfg)
	assert.Error(t, err)
}
