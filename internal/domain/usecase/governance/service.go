package governance

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/usecase"
)

// Role names reported in authorization failures
const (
	RoleOwner      = "owner"
	RoleController = "controller"
)

// Service owns the token state: owner, controller roster and listing timestamp.
// The state is cached after the first load and every change is written through.
type Service struct {
	repo   persistence.GovernanceRepository
	clock  coreport.Clock
	logger coreport.Logger

	mu    sync.RWMutex
	state *entity.TokenState
}

var _ usecase.GovernanceUseCase = (*Service)(nil)

// NewService creates a new governance service
func NewService(
	repo persistence.GovernanceRepository,
	clock coreport.Clock,
	logger coreport.Logger,
) *Service {
	return &Service{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Initialize stores bootstrap when nothing is stored yet and returns the state in effect
func (s *Service) Initialize(ctx context.Context, bootstrap *entity.TokenState) (*entity.TokenState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		s.state = stored
		s.logger.Info("Token state loaded", map[string]any{
			"owner":       stored.Owner.String(),
			"controllers": len(stored.Controllers),
			"listed":      stored.IsListed(),
		})
		return stored.Clone(), nil
	case !errors.Is(err, errs.ErrNotFound):
		return nil, fmt.Errorf("failed to load token state: %w", err)
	}

	if bootstrap == nil || bootstrap.Owner.IsZero() {
		return nil, errs.InvalidArguments("bootstrap token state requires an owner")
	}
	if err := validateRoster(bootstrap.Controllers); err != nil {
		return nil, err
	}
	if bootstrap.ListingTimestamp != nil {
		if err := validateListing(*bootstrap.ListingTimestamp); err != nil {
			return nil, err
		}
	}

	state := bootstrap.Clone()
	state.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save token state: %w", err)
	}
	s.state = state

	s.logger.Info("Token state initialized", map[string]any{
		"owner":       state.Owner.String(),
		"controllers": len(state.Controllers),
	})
	return state.Clone(), nil
}

// State returns a copy of the current token state
func (s *Service) State(ctx context.Context) (*entity.TokenState, error) {
	state, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return state.Clone(), nil
}

// Owner returns the current owner
func (s *Service) Owner(ctx context.Context) (entity.Address, error) {
	state, err := s.current(ctx)
	if err != nil {
		return "", err
	}
	return state.Owner, nil
}

// IsOwner reports whether addr is the current owner
func (s *Service) IsOwner(ctx context.Context, addr entity.Address) (bool, error) {
	state, err := s.current(ctx)
	if err != nil {
		return false, err
	}
	return !addr.IsZero() && state.Owner == addr, nil
}

// IsController reports whether addr is on the roster and is not the owner
func (s *Service) IsController(ctx context.Context, addr entity.Address) (bool, error) {
	state, err := s.current(ctx)
	if err != nil {
		return false, err
	}
	if addr.IsZero() || state.Owner == addr {
		return false, nil
	}
	return state.HasController(addr), nil
}

// Controllers returns a copy of the roster
func (s *Service) Controllers(ctx context.Context) ([]entity.Address, error) {
	state, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return append([]entity.Address{}, state.Controllers...), nil
}

// TransferOwnership hands ownership to newOwner
func (s *Service) TransferOwnership(ctx context.Context, caller, newOwner entity.Address) error {
	return s.update(ctx, caller, "transfer_ownership", func(state *entity.TokenState) error {
		if newOwner.IsZero() {
			return errs.InvalidArguments("new owner is empty")
		}
		if newOwner == state.Owner {
			return errs.InvalidArguments("%s already owns the token", newOwner)
		}
		state.Owner = newOwner
		return nil
	})
}

// SetControllers replaces the roster with controllers
func (s *Service) SetControllers(ctx context.Context, caller entity.Address, controllers []entity.Address) error {
	return s.update(ctx, caller, "set_controllers", func(state *entity.TokenState) error {
		if err := validateRoster(controllers); err != nil {
			return err
		}
		state.Controllers = append([]entity.Address{}, controllers...)
		return nil
	})
}

// IsListed reports whether the listing event happened
func (s *Service) IsListed(ctx context.Context) (bool, error) {
	state, err := s.current(ctx)
	if err != nil {
		return false, err
	}
	return state.IsListed(), nil
}

// ListingTimestamp returns the listing time or nil before listing
func (s *Service) ListingTimestamp(ctx context.Context) (*int64, error) {
	state, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if state.ListingTimestamp == nil {
		return nil, nil
	}
	ts := *state.ListingTimestamp
	return &ts, nil
}

// SetListingTimestamp records the listing time once
func (s *Service) SetListingTimestamp(ctx context.Context, caller entity.Address, ts int64) error {
	return s.update(ctx, caller, "set_listing_timestamp", func(state *entity.TokenState) error {
		if state.IsListed() {
			return errs.ErrAlreadyListed
		}
		if err := validateListing(ts); err != nil {
			return err
		}
		state.ListingTimestamp = &ts
		return nil
	})
}

// current returns the cached state, loading it on first use
func (s *Service) current(ctx context.Context) (*entity.TokenState, error) {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()
	if state != nil {
		return state, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != nil {
		return s.state, nil
	}
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load token state: %w", err)
	}
	s.state = stored
	return stored, nil
}

// update runs an owner-only mutation on a copy of the state and writes it through
func (s *Service) update(
	ctx context.Context,
	caller entity.Address,
	operation string,
	mutate func(state *entity.TokenState) error,
) error {
	if _, err := s.current(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if caller.IsZero() || s.state.Owner != caller {
		err := errs.NewUnauthorizedError(caller.String(), RoleOwner, operation)
		s.logger.Warn("Rejected governance change", err.(*errs.UnauthorizedError).LogFields())
		return err
	}

	next := s.state.Clone()
	if err := mutate(next); err != nil {
		return err
	}
	next.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.Error("Failed to save token state", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return fmt.Errorf("failed to save token state: %w", err)
	}
	s.state = next

	s.logger.Info("Token state updated", map[string]any{
		"operation": operation,
		"caller":    caller.String(),
	})
	return nil
}

func validateListing(ts int64) error {
	if ts <= 0 {
		return errs.InvalidArguments("listing timestamp must be positive, got %d", ts)
	}
	if ts > entity.MaxListingTimestamp {
		return errs.InvalidArguments("listing timestamp %d is after %d", ts, entity.MaxListingTimestamp)
	}
	return nil
}

func validateRoster(controllers []entity.Address) error {
	seen := make(map[entity.Address]struct{}, len(controllers))
	for _, c := range controllers {
		if c.IsZero() {
			return errs.InvalidArguments("controller address is empty")
		}
		if _, dup := seen[c]; dup {
			return errs.InvalidArguments("controller %s listed twice", c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
