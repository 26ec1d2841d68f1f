package handlers

import (
	"context"

	"github.com/arkhipovds/leadbox/internal/domain/model"
	"github.com/arkhipovds/leadbox/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

// LeadFacade encapsulates lead operations exposed via HTTP.
type LeadFacade interface {
	CreateLead(ctx context.Context, ownerID int64, input usecase.LeadInput) (*model.Lead, error)
	Leads(ctx context.Context, ownerID int64) ([]model.Lead, error)
	Lead(ctx context.Context, ownerID, leadID int64) (*model.Lead, error)
	UpdateLead(ctx context.Context, ownerID, leadID int64, input usecase.LeadInput) (*model.Lead, error)
	DeleteLead(ctx context.Context, ownerID, leadID int64) error
}

// CRMFacade aggregates the full set of operations used across handlers.
type CRMFacade interface {
	AuthFacade
	LeadFacade
}
