package test

import (
	"context"

	"github.com/arkhipovds/leadbox/internal/domain/model"
	"github.com/arkhipovds/leadbox/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ResolveFn      func(context.Context, string) (*model.User, error)
}

// Register returns user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, "token", nil
}

// Authenticate returns user and token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, "token", nil
}

// ResolveToken returns the stub identity for authenticated requests.
func (s AuthFacadeStub) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	return &model.User{ID: 1, Email: "user@example.com"}, nil
}

// LeadFacadeStub simulates lead CRUD interactions.
type LeadFacadeStub struct {
	CreateFn func(context.Context, int64, usecase.LeadInput) (*model.Lead, error)
	ListFn   func(context.Context, int64) ([]model.Lead, error)
	GetFn    func(context.Context, int64, int64) (*model.Lead, error)
	UpdateFn func(context.Context, int64, int64, usecase.LeadInput) (*model.Lead, error)
	DeleteFn func(context.Context, int64, int64) error
}

// CreateLead returns a lead echoing the provided input.
func (s LeadFacadeStub) CreateLead(ctx context.Context, ownerID int64, input usecase.LeadInput) (*model.Lead, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, ownerID, input)
	}
	return &model.Lead{ID: 1, OwnerID: ownerID, FirstName: input.FirstName, LastName: input.LastName, Email: input.Email, Company: input.Company, Note: input.Note}, nil
}

// Leads returns configured leads.
func (s LeadFacadeStub) Leads(ctx context.Context, ownerID int64) ([]model.Lead, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, ownerID)
	}
	return nil, nil
}

// Lead returns a single lead.
func (s LeadFacadeStub) Lead(ctx context.Context, ownerID, leadID int64) (*model.Lead, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, ownerID, leadID)
	}
	return &model.Lead{ID: leadID, OwnerID: ownerID}, nil
}

// UpdateLead returns the updated lead.
func (s LeadFacadeStub) UpdateLead(ctx context.Context, ownerID, leadID int64, input usecase.LeadInput) (*model.Lead, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, ownerID, leadID, input)
	}
	return &model.Lead{ID: leadID, OwnerID: ownerID, FirstName: input.FirstName}, nil
}

// DeleteLead reports success unless overridden.
func (s LeadFacadeStub) DeleteLead(ctx context.Context, ownerID, leadID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, ownerID, leadID)
	}
	return nil
}

// CRMFacadeStub aggregates facade dependencies for HTTP layer tests.
type CRMFacadeStub struct {
	AuthFacadeStub
	LeadFacadeStub
}

// HealthCheckerStub reports configurable store health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
