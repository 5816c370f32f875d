package entity

import (
	"fmt"
	"math"
	"sort"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	"github.com/holiman/uint256"
)

// LockEntry is a fixed amount of an account's balance that becomes free at ReleaseTime.
// Relative entries were created before listing and carry an offset from the listing
// moment instead of an absolute unix timestamp.
type LockEntry struct {
	Amount      *uint256.Int
	ReleaseTime int64
	Relative    bool
}

// Clone returns a deep copy of the entry
func (e LockEntry) Clone() LockEntry {
	return LockEntry{
		Amount:      e.Amount.Clone(),
		ReleaseTime: e.ReleaseTime,
		Relative:    e.Relative,
	}
}

// LockSchedule keeps an account's lock entries sorted by release time.
// Entries with equal release times stay in insertion order.
// A schedule is either entirely relative (before listing) or entirely absolute.
type LockSchedule struct {
	entries []LockEntry
}

// NewLockSchedule builds a schedule from already persisted entries, restoring order
func NewLockSchedule(entries []LockEntry) (*LockSchedule, error) {
	s := &LockSchedule{}
	for _, entry := range entries {
		if err := s.Insert(entry); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Insert places entry after every entry releasing at or before it
func (s *LockSchedule) Insert(entry LockEntry) error {
	if entry.Amount == nil || entry.Amount.IsZero() {
		return errs.InvalidArguments("lock entry amount must be positive")
	}
	if len(s.entries) > 0 && s.entries[0].Relative != entry.Relative {
		return fmt.Errorf("%w: cannot mix relative and absolute lock entries", errs.ErrInternalServer)
	}

	pos := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].ReleaseTime > entry.ReleaseTime
	})

	s.entries = append(s.entries, LockEntry{})
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = entry
	return nil
}

// Rebase turns relative offsets into absolute release times anchored at listing.
// Sums that do not fit in int64 saturate at math.MaxInt64, which keeps the schedule
// sorted and the entry locked.
func (s *LockSchedule) Rebase(listing int64) bool {
	if len(s.entries) == 0 || !s.entries[0].Relative {
		return false
	}
	for i := range s.entries {
		s.entries[i].ReleaseTime = saturatingAdd(listing, s.entries[i].ReleaseTime)
		s.entries[i].Relative = false
	}
	return true
}

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

// Settle removes every absolute entry with ReleaseTime <= now and returns the released
// amount and the number of entries pruned. It stops at the first unreleased entry.
func (s *LockSchedule) Settle(now int64) (*uint256.Int, int) {
	released := new(uint256.Int)
	count := 0
	for count < len(s.entries) {
		entry := s.entries[count]
		if entry.Relative || entry.ReleaseTime > now {
			break
		}
		released.Add(released, entry.Amount)
		count++
	}

	if count == len(s.entries) {
		s.entries = nil
	} else if count > 0 {
		s.entries = s.entries[count:]
	}
	return released, count
}

// LockedSum returns the total amount still locked
func (s *LockSchedule) LockedSum() *uint256.Int {
	sum := new(uint256.Int)
	for _, entry := range s.entries {
		sum.Add(sum, entry.Amount)
	}
	return sum
}

// MinReleaseTime returns the earliest absolute release time. The second value is false
// when nothing is pending or the entries are still waiting for the listing event.
func (s *LockSchedule) MinReleaseTime() (int64, bool) {
	if len(s.entries) == 0 || s.entries[0].Relative {
		return 0, false
	}
	return s.entries[0].ReleaseTime, true
}

// IsRelative reports whether the schedule still holds pre-listing offsets
func (s *LockSchedule) IsRelative() bool {
	return len(s.entries) > 0 && s.entries[0].Relative
}

// Entries returns a copy of the entries in release order
func (s *LockSchedule) Entries() []LockEntry {
	out := make([]LockEntry, len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry.Clone()
	}
	return out
}

// Len returns the number of pending entries
func (s *LockSchedule) Len() int {
	return len(s.entries)
}

// Clone returns a deep copy of the schedule
func (s *LockSchedule) Clone() *LockSchedule {
	if s == nil {
		return &LockSchedule{}
	}
	return &LockSchedule{entries: s.Entries()}
}
