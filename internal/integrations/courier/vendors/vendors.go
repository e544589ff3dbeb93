// Package vendors builds the courier registry from config.
package vendors

import (
	"log/slog"

	"github.com/BearBump/DispatchBox/config"
	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/fake"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/pathao"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/steadfast"
)

// New registers pathao and steadfast. A vendor without credentials gets the local fake
// under its code, so a dev stack works without network access.
func New(cfg *config.Config, decorators ...courier.Decorator) *courier.Registry {
	reg := courier.NewRegistry()

	if cfg.Pathao.ClientID != "" {
		reg.Register(pathao.New(pathao.Config{
			BaseURL:      cfg.Pathao.BaseURL,
			ClientID:     cfg.Pathao.ClientID,
			ClientSecret: cfg.Pathao.ClientSecret,
			Username:     cfg.Pathao.Username,
			Password:     cfg.Pathao.Password,
			StoreID:      cfg.Pathao.StoreID,
		}), decorators...)
	} else {
		slog.Warn("pathao credentials are empty, using fake vendor")
		reg.Register(fake.NewWithCode(pathao.Code), decorators...)
	}

	if cfg.Steadfast.APIKey != "" {
		reg.Register(steadfast.New(cfg.Steadfast.BaseURL, cfg.Steadfast.APIKey, cfg.Steadfast.SecretKey), decorators...)
	} else {
		slog.Warn("steadfast credentials are empty, using fake vendor")
		reg.Register(fake.NewWithCode(steadfast.Code), decorators...)
	}

	return reg
}
