package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/procurement-console/internal/app"
	"github.com/polkiloo/procurement-console/internal/config"
	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/domain/repository"
	"github.com/polkiloo/procurement-console/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:          ":0",
		GatewayURL:          "http://gateway.local",
		GatewayTimeout:      time.Second,
		OrdersPollInterval:  time.Millisecond,
		ShutdownTimeout:     time.Millisecond,
		CreatorOrganization: "Magnova",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	gateway := test.GatewayStub{
		OrderRepositoryStub:   &test.OrderRepositoryStub{},
		SessionRepositoryStub: &test.SessionRepositoryStub{User: model.User{Name: "Ada", Role: model.RoleAdmin, Organization: "Magnova"}},
	}

	var console *app.Console
	fxApp := fx.New(
		fx.NopLogger,
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(repository.Gateway(gateway)),
		),
		fx.Populate(&console),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if console == nil {
		t.Fatal("expected console instance")
	}

	session, err := console.Session(context.Background())
	if err != nil {
		t.Fatalf("session returned error: %v", err)
	}
	if !session.Capabilities.CreateOrders {
		t.Fatalf("expected admin in creator organization to create orders")
	}
}
