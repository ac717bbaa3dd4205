// Package stockrepo persists the inventory ledger. Each row is the stock of
// one product at one distribution center; the pair is the primary key, so
// the one-record-per-pair rule is enforced by the database itself.
package stockrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
)

// StockRecordDTO represents the database structure for ledger records.
// The CHECK constraint backs up the non-negative invariant at the lowest
// level; the conditional update in Adjust is what enforces it atomically.
type StockRecordDTO struct {
	Location    string `gorm:"primaryKey;size:16"`
	ProductID   string `gorm:"primaryKey;size:64"`
	Quantity    int    `gorm:"not null;check:quantity >= 0"`
	LastUpdated time.Time
}

// TableName specifies the database table name for ledger records.
func (StockRecordDTO) TableName() string {
	return "stock_records"
}

func fromDomain(record *stock.Record) StockRecordDTO {
	return StockRecordDTO{
		Location:    record.Location().String(),
		ProductID:   record.ProductID(),
		Quantity:    record.Quantity(),
		LastUpdated: record.LastUpdated(),
	}
}

func toDomain(dto StockRecordDTO) (*stock.Record, error) {
	location, err := kernel.ParseRDC(dto.Location)
	if err != nil {
		return nil, err
	}

	return stock.RestoreRecord(location, dto.ProductID, dto.Quantity, dto.LastUpdated)
}
