package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
)

// AccountLocker provides exclusive access to accounts for the duration of one operation.
// Each address owns a one-slot channel; holding the slot means holding the account.
type AccountLocker struct {
	logger  coreport.Logger
	timeout time.Duration

	// Per-account slots
	slots sync.Map // map[entity.Address]chan struct{}
}

// NewAccountLocker creates a locker. A zero timeout waits until the context is done.
func NewAccountLocker(logger coreport.Logger, timeout time.Duration) *AccountLocker {
	return &AccountLocker{
		logger:  logger,
		timeout: timeout,
	}
}

// Lock acquires every address in ascending order so concurrent multi-account
// operations cannot deadlock. The returned function releases all of them.
//
// Possible errors:
// - ErrAccountLocked: If the accounts could not be acquired within the timeout
// - context errors: If ctx is done first
func (l *AccountLocker) Lock(ctx context.Context, addresses ...entity.Address) (func(), error) {
	ordered := entity.SortedUnique(addresses...)
	held := make([]chan struct{}, 0, len(ordered))

	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			<-held[i]
		}
	}

	var expired <-chan time.Time
	if l.timeout > 0 {
		timer := time.NewTimer(l.timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for _, addr := range ordered {
		slot := l.slot(addr)
		select {
		case slot <- struct{}{}:
			held = append(held, slot)
		case <-expired:
			release()
			l.logger.Warn("Timed out waiting for account", map[string]any{
				"address": addr.String(),
				"timeout": l.timeout.String(),
			})
			return nil, errs.ErrAccountLocked
		case <-ctx.Done():
			release()
			return nil, ctx.Err()
		}
	}

	return release, nil
}

func (l *AccountLocker) slot(addr entity.Address) chan struct{} {
	if existing, ok := l.slots.Load(addr); ok {
		return existing.(chan struct{})
	}
	actual, _ := l.slots.LoadOrStore(addr, make(chan struct{}, 1))
	return actual.(chan struct{})
}
