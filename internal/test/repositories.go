package test

import (
	"context"
	"time"

	domainErrors "github.com/arkhipovds/leadbox/internal/domain/errors"
	"github.com/arkhipovds/leadbox/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// LeadRepositoryStub stores leads in-memory for tests.
type LeadRepositoryStub struct {
	Leads map[int64]*model.Lead
	Next  int64
	Err   error
}

// NewLeadRepositoryStub constructs stub repository with initialized map.
func NewLeadRepositoryStub() *LeadRepositoryStub {
	return &LeadRepositoryStub{Leads: make(map[int64]*model.Lead), Next: 1}
}

// Create stores lead and assigns an identifier.
func (s *LeadRepositoryStub) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Leads == nil {
		s.Leads = make(map[int64]*model.Lead)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *lead
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Next++
	s.Leads[stored.ID] = &stored
	result := stored
	return &result, nil
}

// GetByID fetches lead by identifier or returns not found.
func (s *LeadRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Lead, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if lead, ok := s.Leads[id]; ok {
		result := *lead
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByOwner returns leads owned by the user.
func (s *LeadRepositoryStub) ListByOwner(ctx context.Context, ownerID int64) ([]model.Lead, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Lead
	for id := int64(1); id < s.Next; id++ {
		if lead, ok := s.Leads[id]; ok && lead.OwnerID == ownerID {
			result = append(result, *lead)
		}
	}
	return result, nil
}

// Update overwrites a stored lead.
func (s *LeadRepositoryStub) Update(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	existing, ok := s.Leads[lead.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	updated := *lead
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	s.Leads[lead.ID] = &updated
	result := updated
	return &result, nil
}

// Delete removes lead by identifier.
func (s *LeadRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Leads[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Leads, id)
	return nil
}
