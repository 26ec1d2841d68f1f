package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/arkhipovds/leadbox/internal/domain/errors"
	"github.com/arkhipovds/leadbox/internal/domain/model"
	"github.com/arkhipovds/leadbox/internal/domain/repository"
)

// LeadInput carries the mutable lead fields supplied by clients.
type LeadInput struct {
	FirstName string
	LastName  string
	Email     string
	Company   string
	Note      string
}

// LeadUseCase encapsulates ownership-scoped lead CRUD. Every read and
// mutation verifies that the lead belongs to the acting user before
// touching it; a mismatch is ErrForbidden, never silently empty.
type LeadUseCase struct {
	leads repository.LeadRepository
}

// NewLeadUseCase constructs LeadUseCase.
func NewLeadUseCase(leads repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{leads: leads}
}

// Create stores a new lead owned by ownerID.
func (u *LeadUseCase) Create(ctx context.Context, ownerID int64, input LeadInput) (*model.Lead, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	lead := &model.Lead{
		OwnerID:   ownerID,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Company:   strings.TrimSpace(input.Company),
		Note:      input.Note,
	}
	return u.leads.Create(ctx, lead)
}

// Get returns a single lead after verifying ownership.
func (u *LeadUseCase) Get(ctx context.Context, ownerID, leadID int64) (*model.Lead, error) {
	return u.owned(ctx, ownerID, leadID)
}

// List returns every lead owned by ownerID.
func (u *LeadUseCase) List(ctx context.Context, ownerID int64) ([]model.Lead, error) {
	return u.leads.ListByOwner(ctx, ownerID)
}

// Update overwrites the mutable fields of an owned lead.
func (u *LeadUseCase) Update(ctx context.Context, ownerID, leadID int64, input LeadInput) (*model.Lead, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	lead, err := u.owned(ctx, ownerID, leadID)
	if err != nil {
		return nil, err
	}

	lead.FirstName = strings.TrimSpace(input.FirstName)
	lead.LastName = strings.TrimSpace(input.LastName)
	lead.Email = strings.TrimSpace(input.Email)
	lead.Company = strings.TrimSpace(input.Company)
	lead.Note = input.Note

	return u.leads.Update(ctx, lead)
}

// Delete removes an owned lead.
func (u *LeadUseCase) Delete(ctx context.Context, ownerID, leadID int64) error {
	lead, err := u.owned(ctx, ownerID, leadID)
	if err != nil {
		return err
	}
	return u.leads.Delete(ctx, lead.ID)
}

func (u *LeadUseCase) owned(ctx context.Context, ownerID, leadID int64) (*model.Lead, error) {
	lead, err := u.leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead.OwnerID != ownerID {
		return nil, domainErrors.ErrForbidden
	}
	return lead, nil
}

func validateInput(input LeadInput) error {
	if strings.TrimSpace(input.FirstName) == "" {
		return domainErrors.ErrInvalidInput
	}
	if email := strings.TrimSpace(input.Email); email != "" && !ValidateEmail(email) {
		return domainErrors.ErrInvalidInput
	}
	return nil
}
