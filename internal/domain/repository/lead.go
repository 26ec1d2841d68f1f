package repository

import (
	"context"

	"github.com/arkhipovds/leadbox/internal/domain/model"
)

// LeadRepository describes persistence operations with leads.
// GetByID is deliberately unscoped so callers can distinguish a missing
// lead from one owned by somebody else.
type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) (*model.Lead, error)
	GetByID(ctx context.Context, id int64) (*model.Lead, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Lead, error)
	Update(ctx context.Context, lead *model.Lead) (*model.Lead, error)
	Delete(ctx context.Context, id int64) error
}
