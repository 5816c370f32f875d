package model

import (
	"time"
)

// Account represents the database model for ledger accounts.
// Amounts are stored as base-10 strings in numeric(78,0) columns, wide enough for 2^256-1.
type Account struct {
	Address   string    `gorm:"primaryKey;size:128"`
	Balance   string    `gorm:"type:numeric(78,0);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// LockEntry represents one pending lock of an account. Position keeps the schedule order.
type LockEntry struct {
	Address     string    `gorm:"primaryKey;size:128"`
	Position    int       `gorm:"primaryKey;autoIncrement:false"`
	Amount      string    `gorm:"type:numeric(78,0);not null"`
	ReleaseTime int64     `gorm:"not null"`
	Relative    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for LockEntry
func (LockEntry) TableName() string {
	return "lock_entries"
}

// Allowance represents how much a spender may move on behalf of an owner
type Allowance struct {
	Owner     string    `gorm:"primaryKey;size:128"`
	Spender   string    `gorm:"primaryKey;size:128"`
	Amount    string    `gorm:"type:numeric(78,0);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Allowance
func (Allowance) TableName() string {
	return "allowances"
}
