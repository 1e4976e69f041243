package handlers

import (
	"context"
	"time"

	"github.com/polkiloo/procurement-console/internal/access"
	"github.com/polkiloo/procurement-console/internal/app"
	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/refresh"
	"github.com/polkiloo/procurement-console/internal/server/http/middleware"
	"github.com/polkiloo/procurement-console/internal/usecase"
	"github.com/polkiloo/procurement-console/internal/worker"
)

// SessionFacade exposes the operator and their navigation.
type SessionFacade interface {
	Session(ctx context.Context) (app.SessionView, error)
	Menu(ctx context.Context) ([]access.Entry, error)
}

// RefreshFacade exposes the refresh bus.
type RefreshFacade interface {
	RefreshState() refresh.Snapshot
	Trigger(names []string) []model.Domain
	TriggerAll()
	Signal(change string) error
}

// OrderFacade exposes the loaded purchase order list.
type OrderFacade interface {
	Orders(ctx context.Context) (worker.OrdersView, error)
}

// DraftFacade exposes the order composer.
type DraftFacade interface {
	Draft() usecase.DraftView
	SetDraftHeader(date time.Time, office model.Office) usecase.DraftView
	AddDraftLine() usecase.DraftView
	UpdateDraftLine(index int, field model.LineField, value string) (usecase.DraftView, error)
	RemoveDraftLine(index int) (usecase.DraftView, error)
	SubmitDraft(ctx context.Context) (*model.Order, error)
}

// ReviewFacade exposes the approval dialog.
type ReviewFacade interface {
	Review() usecase.ReviewState
	OpenReview(ctx context.Context, number string) (usecase.ReviewState, error)
	SetReviewReason(reason string) (usecase.ReviewState, error)
	Decide(ctx context.Context, kind model.ApprovalKind) (*model.Order, error)
	CloseReview()
}

// ConsoleFacade aggregates the full set of operations used across handlers.
type ConsoleFacade interface {
	middleware.Authorizer
	SessionFacade
	RefreshFacade
	OrderFacade
	DraftFacade
	ReviewFacade
}

var _ ConsoleFacade = (*app.Console)(nil)
