package orquest

import (
	"context"
	"errors"
	"log"

	"franchise_dashboard/pkg/models"

	"github.com/google/uuid"
)

var (
	ErrFranchiseeRequired = errors.New("franchiseeId is required for sync operations")
	ErrInvalidFranchisee  = errors.New("invalid franchiseeId format, expected UUID format")
)

// Invoker runs sync actions; *Client satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, action Action, franchiseeID string) (*SyncResponse, error)
}

// Repository reads the mirrored Orquest tables; store.OrquestRepo satisfies it.
type Repository interface {
	ListServices(ctx context.Context, franchiseeID string) ([]models.OrquestService, error)
	ListEmployees(ctx context.Context, franchiseeID string) ([]models.OrquestEmployee, error)
	UpdateService(ctx context.Context, id string, upd models.OrquestServiceUpdate) error
}

type Service struct {
	invoker Invoker
	repo    Repository
}

func NewService(invoker Invoker, repo Repository) *Service {
	return &Service{invoker: invoker, repo: repo}
}

// ValidateFranchiseeID requires a canonical hyphenated UUID.
func ValidateFranchiseeID(id string) error {
	if id == "" {
		return ErrFranchiseeRequired
	}
	if len(id) != 36 {
		return ErrInvalidFranchisee
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidFranchisee
	}
	return nil
}

// SyncAll refreshes services and employees.
func (s *Service) SyncAll(ctx context.Context, franchiseeID string) (*SyncResponse, error) {
	return s.sync(ctx, ActionSyncAll, franchiseeID)
}

// SyncEmployees refreshes employees only.
func (s *Service) SyncEmployees(ctx context.Context, franchiseeID string) (*SyncResponse, error) {
	return s.sync(ctx, ActionSyncEmployees, franchiseeID)
}

func (s *Service) sync(ctx context.Context, action Action, franchiseeID string) (*SyncResponse, error) {
	if err := ValidateFranchiseeID(franchiseeID); err != nil {
		return nil, err
	}
	resp, err := s.invoker.Invoke(ctx, action, franchiseeID)
	if err != nil {
		log.Printf("[ORQUEST] %s failed for %s: %v", action, franchiseeID, err)
		return nil, err
	}
	log.Printf("[ORQUEST] %s for %s: %s", action, franchiseeID, resp.Message())
	return resp, nil
}

func (s *Service) Services(ctx context.Context, franchiseeID string) ([]models.OrquestService, error) {
	return s.repo.ListServices(ctx, franchiseeID)
}

func (s *Service) Employees(ctx context.Context, franchiseeID string) ([]models.OrquestEmployee, error) {
	return s.repo.ListEmployees(ctx, franchiseeID)
}

func (s *Service) UpdateService(ctx context.Context, serviceID string, upd models.OrquestServiceUpdate) error {
	if serviceID == "" {
		return errors.New("service id is required")
	}
	return s.repo.UpdateService(ctx, serviceID, upd)
}
