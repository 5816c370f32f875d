package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	"github.com/holiman/uint256"
)

// Account holds an identity's total balance, its lock schedule and the allowances it granted
type Account struct {
	Address    Address
	balance    *uint256.Int
	schedule   *LockSchedule
	allowances map[Address]*uint256.Int
	UpdatedAt  time.Time
}

// NewAccount creates an empty account, the state of any address never touched before
func NewAccount(address Address) *Account {
	return &Account{
		Address:    address,
		balance:    new(uint256.Int),
		schedule:   &LockSchedule{},
		allowances: make(map[Address]*uint256.Int),
	}
}

// RestoreAccount rebuilds an account from stored state (for repositories)
func RestoreAccount(
	address Address,
	balance *uint256.Int,
	locks []LockEntry,
	allowances map[Address]*uint256.Int,
	updatedAt time.Time,
) (*Account, error) {
	schedule, err := NewLockSchedule(locks)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		balance = new(uint256.Int)
	}
	if schedule.LockedSum().Gt(balance) {
		return nil, errs.InvalidArguments("account %s locks more than its balance", address)
	}

	acc := NewAccount(address)
	acc.balance = balance.Clone()
	acc.schedule = schedule
	acc.UpdatedAt = updatedAt
	for spender, amount := range allowances {
		if amount != nil && !amount.IsZero() {
			acc.allowances[spender] = amount.Clone()
		}
	}
	return acc, nil
}

// Balance returns a copy of the total balance, locked part included
func (a *Account) Balance() *uint256.Int {
	return a.balance.Clone()
}

// LockedBalance returns the sum of entries not yet released as of the last settlement
func (a *Account) LockedBalance() *uint256.Int {
	return a.schedule.LockedSum()
}

// FreeBalance returns total balance minus the locked sum as of the last settlement
func (a *Account) FreeBalance() *uint256.Int {
	return new(uint256.Int).Sub(a.balance, a.schedule.LockedSum())
}

// Schedule exposes the lock schedule for read access
func (a *Account) Schedule() *LockSchedule {
	return a.schedule
}

// Settle re-bases pre-listing entries once listing is known and prunes released entries.
// It returns the number of entries released and whether the account changed.
func (a *Account) Settle(now int64, listing *int64) (int, bool) {
	if listing == nil {
		return 0, false
	}
	rebased := a.schedule.Rebase(*listing)
	_, released := a.schedule.Settle(now)
	return released, rebased || released > 0
}

// Credit adds amount to the balance
func (a *Account) Credit(amount *uint256.Int) error {
	if _, overflow := new(uint256.Int).AddOverflow(a.balance, amount); overflow {
		return errs.ErrAmountOverflow
	}
	a.balance.Add(a.balance, amount)
	return nil
}

// Debit removes amount from the free part of the balance. Callers settle first.
func (a *Account) Debit(amount *uint256.Int) error {
	free := a.FreeBalance()
	if amount.Gt(free) {
		return errs.NewInsufficientFundsError(
			a.Address.String(),
			FormatAmount(amount),
			FormatAmount(free),
			FormatAmount(a.LockedBalance()),
		)
	}
	a.balance.Sub(a.balance, amount)
	return nil
}

// AddLocks credits the sum of entries and merges them into the schedule
func (a *Account) AddLocks(entries []LockEntry) error {
	amounts := make([]*uint256.Int, len(entries))
	for i, entry := range entries {
		amounts[i] = entry.Amount
	}
	total, err := SumAmounts(amounts)
	if err != nil {
		return err
	}
	if err := a.Credit(total); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := a.schedule.Insert(entry); err != nil {
			return err
		}
	}
	return nil
}

// Allowance returns how much spender may still move on behalf of this account
func (a *Account) Allowance(spender Address) *uint256.Int {
	if amount, ok := a.allowances[spender]; ok {
		return amount.Clone()
	}
	return new(uint256.Int)
}

// Allowances returns a copy of every non-zero allowance
func (a *Account) Allowances() map[Address]*uint256.Int {
	out := make(map[Address]*uint256.Int, len(a.allowances))
	for spender, amount := range a.allowances {
		out[spender] = amount.Clone()
	}
	return out
}

// SetAllowance replaces the allowance granted to spender; zero removes it
func (a *Account) SetAllowance(spender Address, amount *uint256.Int) {
	if amount == nil || amount.IsZero() {
		delete(a.allowances, spender)
		return
	}
	a.allowances[spender] = amount.Clone()
}

// SpendAllowance decreases spender's allowance by amount
func (a *Account) SpendAllowance(spender Address, amount *uint256.Int) error {
	current := a.Allowance(spender)
	if amount.Gt(current) {
		return errs.NewInsufficientAllowanceError(
			a.Address.String(),
			spender.String(),
			FormatAmount(amount),
			FormatAmount(current),
		)
	}
	a.SetAllowance(spender, current.Sub(current, amount))
	return nil
}

// Touch records the time of the last mutation
func (a *Account) Touch(now time.Time) {
	a.UpdatedAt = now
}

// Clone returns a deep copy so mutations can be discarded on failure
func (a *Account) Clone() *Account {
	clone := &Account{
		Address:    a.Address,
		balance:    a.balance.Clone(),
		schedule:   a.schedule.Clone(),
		allowances: make(map[Address]*uint256.Int, len(a.allowances)),
		UpdatedAt:  a.UpdatedAt,
	}
	for spender, amount := range a.allowances {
		clone.allowances[spender] = amount.Clone()
	}
	return clone
}
