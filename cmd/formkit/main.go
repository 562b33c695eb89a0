// Command formkit serves the contact and newsletter forms.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/email"
	"github.com/dmitrymomot/formkit/pkg/feedback"
	"github.com/dmitrymomot/formkit/pkg/formctl"
	"github.com/dmitrymomot/formkit/pkg/formserver"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

type appConfig struct {
	Env              string `env:"APP_ENV" envDefault:"development"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"formkit"`
	LayoutFile       string `env:"FORM_LAYOUT_FILE"`
	InstanceCapacity int    `env:"FORM_INSTANCE_CAPACITY" envDefault:"1024"`

	HTTP       httpserver.Config
	Mail       email.Config
	Submission submission.Config
}

func main() {
	if err := run(); err != nil {
		slog.Error("formkit stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load[appConfig](config.WithOptionalEnvFiles(".env"))
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(formctl.LogExtractor()),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	mail, err := email.NewFromConfig(cfg.Mail)
	if err != nil {
		return err
	}

	selectorOpts := []submission.SelectorOption{submission.WithLogger(log)}
	if mail != nil {
		selectorOpts = append(selectorOpts, submission.WithMailClient(mail))
	}
	selector := submission.NewSelector(cfg.Submission, selectorOpts...)
	log.Info("submission strategy selected",
		logger.Strategy(selector.Kind()),
		slog.String("mail_provider", string(cfg.Mail.Provider)),
	)

	layouts, err := feedback.LoadLayoutsFile(cfg.LayoutFile)
	if err != nil {
		return err
	}

	forms, err := formserver.New(selector,
		formserver.WithLogger(log),
		formserver.WithLayouts(layouts),
		formserver.WithCapacity(cfg.InstanceCapacity),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx, forms.Handler())
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
