package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/arkhipovds/leadbox/internal/app"
	"github.com/arkhipovds/leadbox/internal/config"
	"github.com/arkhipovds/leadbox/internal/domain/repository"
	"github.com/arkhipovds/leadbox/internal/storage/postgres"
	"github.com/arkhipovds/leadbox/internal/test"
	"go.uber.org/fx"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		TokenTTL:        time.Minute,
		TokenStrategy:   "jwt",
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	leadRepo := test.NewLeadRepositoryStub()

	var facade *app.CRMFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.LeadRepository(leadRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected facade instance")
	}
}
