//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"context"

	"github.com/google/wire"

	"go-topdown-arena/internal/app"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/logger"
)

func InitializeGame(ctx context.Context, cfg *config.Config) (*app.Game, error) {
	wire.Build(logger.Provide, app.NewGame)
	return nil, nil
}
