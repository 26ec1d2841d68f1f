package app

import (
	"context"

	"github.com/arkhipovds/leadbox/internal/domain/model"
	"github.com/arkhipovds/leadbox/internal/usecase"
)

// CRMFacade is the single entry point the HTTP layer talks to. It hides the
// use case split behind one stateless surface.
type CRMFacade struct {
	auth  *usecase.AuthUseCase
	leads *usecase.LeadUseCase
}

// NewCRMFacade constructs CRMFacade.
func NewCRMFacade(auth *usecase.AuthUseCase, leads *usecase.LeadUseCase) *CRMFacade {
	return &CRMFacade{auth: auth, leads: leads}
}

func (f *CRMFacade) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password)
}

func (f *CRMFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *CRMFacade) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	return f.auth.ResolveToken(ctx, token)
}

func (f *CRMFacade) CreateLead(ctx context.Context, ownerID int64, input usecase.LeadInput) (*model.Lead, error) {
	return f.leads.Create(ctx, ownerID, input)
}

func (f *CRMFacade) Leads(ctx context.Context, ownerID int64) ([]model.Lead, error) {
	return f.leads.List(ctx, ownerID)
}

func (f *CRMFacade) Lead(ctx context.Context, ownerID, leadID int64) (*model.Lead, error) {
	return f.leads.Get(ctx, ownerID, leadID)
}

func (f *CRMFacade) UpdateLead(ctx context.Context, ownerID, leadID int64, input usecase.LeadInput) (*model.Lead, error) {
	return f.leads.Update(ctx, ownerID, leadID, input)
}

func (f *CRMFacade) DeleteLead(ctx context.Context, ownerID, leadID int64) error {
	return f.leads.Delete(ctx, ownerID, leadID)
}
