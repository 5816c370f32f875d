package entity

import "github.com/holiman/uint256"

// AccountView is a settled, read-only snapshot of an account
type AccountView struct {
	Address       Address
	Balance       *uint256.Int
	LockedBalance *uint256.Int
	FreeBalance   *uint256.Int
	// MinReleaseTime is nil when no lock is counting down
	MinReleaseTime *int64
	Entries        []LockEntry
}

// NewAccountView captures the current state of a settled account
func NewAccountView(acc *Account) *AccountView {
	view := &AccountView{
		Address:       acc.Address,
		Balance:       acc.Balance(),
		LockedBalance: acc.LockedBalance(),
		FreeBalance:   acc.FreeBalance(),
		Entries:       acc.Schedule().Entries(),
	}
	if minRelease, ok := acc.Schedule().MinReleaseTime(); ok {
		view.MinReleaseTime = &minRelease
	}
	return view
}

// MinReleaseTimeOrZero returns the earliest release time or 0 when none is pending
func (v *AccountView) MinReleaseTimeOrZero() int64 {
	if v.MinReleaseTime == nil {
		return 0
	}
	return *v.MinReleaseTime
}
