package di

import (
	"github.com/mvoronin/userhub/internal/app"
	"github.com/mvoronin/userhub/internal/config"
	"github.com/mvoronin/userhub/internal/logger"
	"github.com/mvoronin/userhub/internal/pkg/auth"
	"github.com/mvoronin/userhub/internal/server/http/handlers"
	"github.com/mvoronin/userhub/internal/server/http/router"
	"github.com/mvoronin/userhub/internal/storage/postgres"
	"github.com/mvoronin/userhub/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.AccountFacade) handlers.AccountFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
