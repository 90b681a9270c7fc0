package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/paradise-nursery/storefront-backend/api/responses"
	"github.com/paradise-nursery/storefront-backend/pkg/config"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
	"github.com/paradise-nursery/storefront-backend/pkg/logger"
)

const envHeader = "X-Nursery-Env"

// Pinger is a dependency that can answer a liveness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies every backing dependency before reporting ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var combined error
		statuses := map[string]string{}
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				statuses[name] = "unreachable"
				combined = multierr.Append(combined, err)
				continue
			}
			statuses[name] = "ok"
		}

		if combined != nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "dependencies unavailable").
					WithDetails(statuses))
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "dependencies": statuses})
	}
}
