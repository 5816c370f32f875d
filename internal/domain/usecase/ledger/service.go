package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/holiman/uint256"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/governance"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/usecase"
)

// Operation names used for logs and metrics
const (
	OpSettle            = "settle"
	OpAllowance         = "allowance"
	OpTransfer          = "transfer"
	OpTransferFrom      = "transfer_from"
	OpMultiTransfer     = "multi_transfer"
	OpApprove           = "approve"
	OpBurn              = "burn"
	OpCreatePreListing  = "create_pre_listing_locks"
	OpCreatePostListing = "create_post_listing_locks"
	OpGenesis           = "genesis"
)

// Service is the vesting-aware balance engine.
// Every call reads the clock once, locks the accounts it touches, settles them,
// applies its mutation to copies and commits the copies in one repository call.
type Service struct {
	repo    persistence.LedgerRepository
	auth    governance.Authorizer
	listing governance.ListingGate
	locker  *AccountLocker
	clock   coreport.Clock
	metrics coreport.Metrics
	logger  coreport.Logger
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewService creates a new ledger service
func NewService(
	repo persistence.LedgerRepository,
	auth governance.Authorizer,
	listing governance.ListingGate,
	locker *AccountLocker,
	clock coreport.Clock,
	metrics coreport.Metrics,
	logger coreport.Logger,
) *Service {
	return &Service{
		repo:    repo,
		auth:    auth,
		listing: listing,
		locker:  locker,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// Settle prunes released lock entries of addr, stores the result and returns a view of it.
// This is the explicit mutating read every other query builds on.
func (s *Service) Settle(ctx context.Context, addr entity.Address) (*entity.AccountView, error) {
	var view *entity.AccountView
	err := s.execute(ctx, OpSettle, []entity.Address{addr}, func(tx *txn) error {
		view = entity.NewAccountView(tx.account(addr))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// BalanceOf returns the total balance of addr. Settles addr.
func (s *Service) BalanceOf(ctx context.Context, addr entity.Address) (*uint256.Int, error) {
	view, err := s.Settle(ctx, addr)
	if err != nil {
		return nil, err
	}
	return view.Balance, nil
}

// LockedBalanceOf returns the still locked part of addr's balance. Settles addr.
func (s *Service) LockedBalanceOf(ctx context.Context, addr entity.Address) (*uint256.Int, error) {
	view, err := s.Settle(ctx, addr)
	if err != nil {
		return nil, err
	}
	return view.LockedBalance, nil
}

// LockStateOf returns the pending schedule of addr. Settles addr.
func (s *Service) LockStateOf(ctx context.Context, addr entity.Address) (*usecase.LockState, error) {
	view, err := s.Settle(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &usecase.LockState{
		MinReleaseTime: view.MinReleaseTime,
		Entries:        view.Entries,
	}, nil
}

// LockedCountOf returns the number of pending lock entries of addr. Settles addr.
func (s *Service) LockedCountOf(ctx context.Context, addr entity.Address) (int, error) {
	view, err := s.Settle(ctx, addr)
	if err != nil {
		return 0, err
	}
	return len(view.Entries), nil
}

// AllowanceOf returns how much spender may still move from owner
func (s *Service) AllowanceOf(ctx context.Context, owner, spender entity.Address) (*uint256.Int, error) {
	if err := requireAddress("spender", spender); err != nil {
		return nil, err
	}

	var allowance *uint256.Int
	err := s.execute(ctx, OpAllowance, []entity.Address{owner}, func(tx *txn) error {
		allowance = tx.account(owner).Allowance(spender)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return allowance, nil
}

// TotalSupply returns the amount in circulation
func (s *Service) TotalSupply(ctx context.Context) (*uint256.Int, error) {
	supply, err := s.repo.TotalSupply(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read total supply: %w", err)
	}
	return supply, nil
}

// Transfer moves amount from the free balance of from to to
func (s *Service) Transfer(ctx context.Context, from, to entity.Address, amount *uint256.Int) error {
	if err := requireAddress("recipient", to); err != nil {
		return err
	}
	if err := requirePositive(amount); err != nil {
		return err
	}

	return s.execute(ctx, OpTransfer, []entity.Address{from, to}, func(tx *txn) error {
		if err := tx.account(from).Debit(amount); err != nil {
			return err
		}
		if err := tx.account(to).Credit(amount); err != nil {
			return err
		}
		tx.markDirty(from, to)
		return nil
	})
}

// TransferFrom moves amount from owner to to using spender's allowance.
// The allowance is checked before the owner's free balance.
func (s *Service) TransferFrom(ctx context.Context, spender, owner, to entity.Address, amount *uint256.Int) error {
	if err := requireAddress("spender", spender); err != nil {
		return err
	}
	if err := requireAddress("recipient", to); err != nil {
		return err
	}
	if err := requirePositive(amount); err != nil {
		return err
	}

	return s.execute(ctx, OpTransferFrom, []entity.Address{owner, to}, func(tx *txn) error {
		source := tx.account(owner)
		if err := source.SpendAllowance(spender, amount); err != nil {
			return err
		}
		if err := source.Debit(amount); err != nil {
			return err
		}
		if err := tx.account(to).Credit(amount); err != nil {
			return err
		}
		tx.markDirty(owner, to)
		return nil
	})
}

// MultiTransfer applies all transfers from one sender or none of them.
// The combined amount is checked against the sender's free balance once.
func (s *Service) MultiTransfer(ctx context.Context, from entity.Address, transfers []usecase.TransferRequest) error {
	if len(transfers) == 0 {
		return errs.InvalidArguments("batch has no transfers")
	}

	addresses := make([]entity.Address, 0, len(transfers)+1)
	amounts := make([]*uint256.Int, 0, len(transfers))
	addresses = append(addresses, from)
	for i, tr := range transfers {
		if tr.To.IsZero() {
			return errs.InvalidArguments("recipient #%d is empty", i)
		}
		if tr.Amount == nil || tr.Amount.IsZero() {
			return errs.InvalidArguments("amount #%d must be positive", i)
		}
		addresses = append(addresses, tr.To)
		amounts = append(amounts, tr.Amount)
	}
	total, err := entity.SumAmounts(amounts)
	if err != nil {
		return err
	}

	return s.execute(ctx, OpMultiTransfer, addresses, func(tx *txn) error {
		if err := tx.account(from).Debit(total); err != nil {
			return err
		}
		for _, tr := range transfers {
			if err := tx.account(tr.To).Credit(tr.Amount); err != nil {
				return err
			}
		}
		tx.markDirty(addresses...)
		return nil
	})
}

// Approve sets the allowance of spender over owner's balance. Zero revokes it.
func (s *Service) Approve(ctx context.Context, owner, spender entity.Address, amount *uint256.Int) error {
	if err := requireAddress("spender", spender); err != nil {
		return err
	}
	if amount == nil {
		return errs.InvalidArguments("allowance amount is missing")
	}

	return s.execute(ctx, OpApprove, []entity.Address{owner}, func(tx *txn) error {
		tx.account(owner).SetAllowance(spender, amount)
		tx.markDirty(owner)
		return nil
	})
}

// Burn destroys amount of holder's free balance and reduces the supply
func (s *Service) Burn(ctx context.Context, holder entity.Address, amount *uint256.Int) error {
	if err := requirePositive(amount); err != nil {
		return err
	}

	return s.execute(ctx, OpBurn, []entity.Address{holder}, func(tx *txn) error {
		if err := tx.account(holder).Debit(amount); err != nil {
			return err
		}
		tx.burned.Add(tx.burned, amount)
		tx.markDirty(holder)
		return nil
	})
}

// CreatePreListingLocks locks amounts for recipient at offsets counted from the listing moment
func (s *Service) CreatePreListingLocks(
	ctx context.Context,
	caller, recipient entity.Address,
	amounts []*uint256.Int,
	offsets []int64,
) error {
	return s.CreateLocks(ctx, caller, entity.LockRequest{
		Kind:      entity.LockPreListing,
		Recipient: recipient,
		Amounts:   amounts,
		Times:     offsets,
	})
}

// CreatePostListingLocks locks amounts for recipient until absolute release times
func (s *Service) CreatePostListingLocks(
	ctx context.Context,
	caller, recipient entity.Address,
	amounts []*uint256.Int,
	releaseTimes []int64,
) error {
	return s.CreateLocks(ctx, caller, entity.LockRequest{
		Kind:      entity.LockPostListing,
		Recipient: recipient,
		Amounts:   amounts,
		Times:     releaseTimes,
	})
}

// CreateLocks funds the request from caller's free balance and merges the entries into
// the recipient's schedule. Checks run in order: role, listing side, arguments, funds.
func (s *Service) CreateLocks(ctx context.Context, caller entity.Address, req entity.LockRequest) error {
	operation := OpCreatePostListing
	if req.Kind == entity.LockPreListing {
		operation = OpCreatePreListing
	}
	start := s.clock.Now()

	isController, err := s.auth.IsController(ctx, caller)
	if err != nil {
		return s.finish(operation, start, fmt.Errorf("failed to check controller role: %w", err))
	}
	if !isController {
		return s.finish(operation, start, errs.NewUnauthorizedError(caller.String(), "controller", operation))
	}

	listing, err := s.listing.ListingTimestamp(ctx)
	if err != nil {
		return s.finish(operation, start, fmt.Errorf("failed to read listing timestamp: %w", err))
	}
	switch {
	case req.Kind == entity.LockPreListing && listing != nil:
		return s.finish(operation, start, errs.ErrAlreadyListed)
	case req.Kind == entity.LockPostListing && listing == nil:
		return s.finish(operation, start, errs.ErrListingNotYetOccurred)
	}

	if err := req.Validate(); err != nil {
		return s.finish(operation, start, err)
	}
	total, err := req.Total()
	if err != nil {
		return s.finish(operation, start, err)
	}

	return s.run(ctx, operation, start, listing, []entity.Address{caller, req.Recipient}, func(tx *txn) error {
		if err := tx.account(caller).Debit(total); err != nil {
			return err
		}
		if err := tx.account(req.Recipient).AddLocks(req.Entries()); err != nil {
			return err
		}
		tx.markDirty(caller, req.Recipient)
		return nil
	})
}

// Genesis mints supply to owner when nothing has been minted yet.
// It reports whether minting happened.
func (s *Service) Genesis(ctx context.Context, owner entity.Address, supply *uint256.Int) (bool, error) {
	if supply == nil || supply.IsZero() {
		return false, nil
	}

	minted := false
	err := s.execute(ctx, OpGenesis, []entity.Address{owner}, func(tx *txn) error {
		current, err := s.repo.TotalSupply(ctx)
		if err != nil {
			return fmt.Errorf("failed to read total supply: %w", err)
		}
		if !current.IsZero() {
			return nil
		}
		if err := tx.account(owner).Credit(supply); err != nil {
			return err
		}
		tx.minted.Set(supply)
		tx.markDirty(owner)
		minted = true
		return nil
	})
	return minted, err
}

// txn carries the state of one engine call
type txn struct {
	now      time.Time
	accounts map[entity.Address]*entity.Account
	dirty    map[entity.Address]struct{}
	minted   *uint256.Int
	burned   *uint256.Int
}

func (tx *txn) account(addr entity.Address) *entity.Account {
	return tx.accounts[addr]
}

func (tx *txn) markDirty(addresses ...entity.Address) {
	for _, addr := range addresses {
		tx.dirty[addr] = struct{}{}
	}
}

func (tx *txn) changeset() entity.Changeset {
	addresses := make([]entity.Address, 0, len(tx.dirty))
	for addr := range tx.dirty {
		addresses = append(addresses, addr)
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i] < addresses[j] })

	changes := entity.Changeset{
		Accounts: make([]*entity.Account, 0, len(addresses)),
		Minted:   tx.minted,
		Burned:   tx.burned,
	}
	for _, addr := range addresses {
		acc := tx.accounts[addr]
		acc.Touch(tx.now)
		changes.Accounts = append(changes.Accounts, acc)
	}
	return changes
}

// execute reads the clock and the listing timestamp, then runs fn under the account locks
func (s *Service) execute(ctx context.Context, operation string, addresses []entity.Address, fn func(tx *txn) error) error {
	start := s.clock.Now()

	for _, addr := range addresses {
		if err := requireAddress("account", addr); err != nil {
			return s.finish(operation, start, err)
		}
	}

	listing, err := s.listing.ListingTimestamp(ctx)
	if err != nil {
		return s.finish(operation, start, fmt.Errorf("failed to read listing timestamp: %w", err))
	}

	return s.run(ctx, operation, start, listing, addresses, fn)
}

// run locks, loads and settles the accounts, applies fn to copies and commits them
func (s *Service) run(
	ctx context.Context,
	operation string,
	now time.Time,
	listing *int64,
	addresses []entity.Address,
	fn func(tx *txn) error,
) error {
	unlock, err := s.locker.Lock(ctx, addresses...)
	if err != nil {
		return s.finish(operation, now, err)
	}
	defer unlock()

	ordered := entity.SortedUnique(addresses...)
	loaded, err := s.repo.LoadAccounts(ctx, ordered)
	if err != nil {
		return s.finish(operation, now, fmt.Errorf("failed to load accounts: %w", err))
	}

	tx := &txn{
		now:      now,
		accounts: make(map[entity.Address]*entity.Account, len(loaded)),
		dirty:    make(map[entity.Address]struct{}),
		minted:   new(uint256.Int),
		burned:   new(uint256.Int),
	}

	released := 0
	for _, acc := range loaded {
		working := acc.Clone()
		count, changed := working.Settle(now.Unix(), listing)
		released += count
		if changed {
			tx.markDirty(working.Address)
		}
		tx.accounts[working.Address] = working
	}

	if err := fn(tx); err != nil {
		return s.finish(operation, now, err)
	}

	changes := tx.changeset()
	if !changes.IsEmpty() {
		if err := s.repo.Commit(ctx, changes); err != nil {
			return s.finish(operation, now, fmt.Errorf("failed to commit %s: %w", operation, err))
		}
	}

	if released > 0 {
		s.metrics.RecordReleased(released)
		s.logger.Debug("Released lock entries", map[string]any{
			"operation": operation,
			"entries":   released,
		})
	}
	return s.finish(operation, now, nil)
}

// finish records the outcome of an operation and passes err through
func (s *Service) finish(operation string, start time.Time, err error) error {
	duration := s.clock.Since(start)

	switch {
	case err == nil:
		s.metrics.RecordOperation(operation, coreport.OutcomeSuccess, duration)
		if operation != OpSettle && operation != OpAllowance {
			s.logger.Info("Ledger operation completed", map[string]any{
				"operation":   operation,
				"duration_ms": duration.Milliseconds(),
			})
		}
	case isRejection(err):
		s.metrics.RecordOperation(operation, coreport.OutcomeRejected, duration)
		fields := map[string]any{
			"operation":  operation,
			"error":      err.Error(),
			"error_code": errs.ErrorCode(err),
		}
		var detailed interface{ LogFields() map[string]any }
		if errors.As(err, &detailed) {
			for k, v := range detailed.LogFields() {
				fields[k] = v
			}
		}
		s.logger.Warn("Ledger operation rejected", fields)
	default:
		s.metrics.RecordOperation(operation, coreport.OutcomeFailed, duration)
		s.logger.Error("Ledger operation failed", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
	}
	return err
}

func isRejection(err error) bool {
	code := errs.ErrorCode(err)
	return code >= 4000 && code < 5000
}

func requireAddress(role string, addr entity.Address) error {
	if addr.IsZero() {
		return errs.InvalidArguments("%s address is empty", role)
	}
	return nil
}

func requirePositive(amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return errs.InvalidArguments("amount must be positive")
	}
	return nil
}
