//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/scripthost/internal/config"
	"github.com/zeusync/scripthost/internal/core/content"
)

func InitializeHost(cfg config.Config, dir *content.Directory) (*Host, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
