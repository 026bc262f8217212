package di

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"minigrep/internal/config"
	"minigrep/internal/web"
)

func NewRouter(searchHandler *web.SearchHandler) http.Handler {
	router := chi.NewRouter()
	web.RegisterRoutes(router, searchHandler)
	return router
}

func StartHttpServer(lc fx.Lifecycle, handler http.Handler, config *config.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.HttpPort),
		Handler: handler,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			logger.Info("server started", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("serve failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down server")
			return server.Shutdown(ctx)
		},
	})
}
