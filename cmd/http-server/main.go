package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"

	"postalform/internal/adapters/health"
	httpAdapter "postalform/internal/adapters/http"
	healthHttp "postalform/internal/adapters/http/health"
	postalHandler "postalform/internal/adapters/http/postalcode"
	metricsAdapter "postalform/internal/adapters/metrics"
	validatorAdapter "postalform/internal/adapters/validator"
	"postalform/internal/config"
	"postalform/internal/core/domain/postalcode"
	"postalform/internal/core/ports"
	postalUsecase "postalform/internal/core/usecase/postalcode"
	platformHealth "postalform/internal/platform/health"
	"postalform/internal/platform/logger"
	"postalform/internal/platform/metrics"
	"postalform/internal/platform/validator"
	"postalform/internal/version"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "load .env:", err)
		os.Exit(1)
	}
	fx.New(appModule).Run()
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadValidation),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return cfg.LoggerConfig()
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validatorAdapter.NewPlaygroundAdapter),
	fx.Provide(func(v validator.Validator) postalcode.Checker {
		return v
	}),
	fx.Provide(metrics.NewProvider),

	// Health Checks
	fx.Provide(fx.Annotate(health.NewRulesChecker, fx.As(new(platformHealth.Checker)), fx.ResultTags(`group:"health_checkers"`))),
	fx.Provide(fx.Annotate(
		func(cfg *config.HttpConfig, checkers []platformHealth.Checker) *platformHealth.Manager {
			m := platformHealth.NewManager(
				platformHealth.WithCheckTimeout(time.Duration(cfg.Health.CheckTimeout)*time.Second),
				platformHealth.WithCacheTTL(time.Duration(cfg.Health.CacheTTL)*time.Second),
			)
			for _, checker := range checkers {
				m.Register(checker)
			}
			return m
		},
		fx.ParamTags(``, `group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// HTTP Server
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(postalHandler.NewHandler),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Get())
	}),
	fx.Provide(func(hm platformHealth.ManagerInterface) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Get(), hm)
	}),
	fx.Provide(func(cfg *config.HttpConfig, log logger.Logger, postal *postalHandler.Handler, liveness *healthHttp.LivenessHandler, readiness *healthHttp.ReadinessHandler, metrics *metrics.Provider) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:            cfg,
			Logger:            log,
			PostalCodeHandler: postal,
			LivenessHandler:   liveness,
			ReadinessHandler:  readiness,
			MetricsProvider:   metrics,
		}
	}),

	// Domain
	fx.Provide(fx.Annotate(
		func(checker postalcode.Checker, cfg *config.ValidationConfig) (*postalcode.Validator, error) {
			return postalcode.NewValidator(checker, cfg.Policy())
		},
		fx.As(new(postalUsecase.InputValidator)),
	)),
	fx.Provide(fx.Annotate(metricsAdapter.NewValidationRecorder, fx.As(new(ports.ValidationRecorder)))),
	fx.Provide(fx.Annotate(postalUsecase.NewUsecase, fx.As(new(postalHandler.Manager)))),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, log logger.Logger, cfg *config.ValidationConfig, hm platformHealth.ManagerInterface, mp *metrics.Provider, srv *httpAdapter.Server) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if !hm.IsHealthy(ctx) {
					return errors.New("postal code rules self-test failed")
				}

				policy := cfg.Policy()
				log.Info("Postal code validation policy",
					logger.String("whitespace", string(policy.Whitespace)),
					logger.Int("zip_max_length", policy.ZipMaxLength),
					logger.Bool("stop_on_required", policy.StopOnRequired),
					logger.String("version", version.Get()))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				defer func() { _ = log.Sync() }()
				return mp.Shutdown(ctx)
			},
		})
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),
)
