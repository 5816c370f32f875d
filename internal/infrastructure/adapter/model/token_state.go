package model

import (
	"time"
)

// SingletonID is the primary key of single-row tables
const SingletonID uint = 1

// LedgerSupply holds the total supply of the token
type LedgerSupply struct {
	ID          uint      `gorm:"primaryKey;autoIncrement:false"`
	TotalSupply string    `gorm:"type:numeric(78,0);not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for LedgerSupply
func (LedgerSupply) TableName() string {
	return "ledger_supply"
}

// TokenState holds token metadata, roles and the listing timestamp
type TokenState struct {
	ID               uint      `gorm:"primaryKey;autoIncrement:false"`
	Name             string    `gorm:"size:255;not null"`
	Symbol           string    `gorm:"size:32;not null"`
	Decimals         uint8     `gorm:"not null"`
	Owner            string    `gorm:"size:128;not null"`
	Controllers      []string  `gorm:"serializer:json;type:text;not null"`
	ListingTimestamp *int64    `gorm:"null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for TokenState
func (TokenState) TableName() string {
	return "token_states"
}
