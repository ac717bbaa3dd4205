package postgres

import (
	"context"

	"gorm.io/gorm"
)

const orderSequenceName = "order_number"

// SequenceDTO represents a named counter row backing business identifier
// allocation.
type SequenceDTO struct {
	Name  string `gorm:"primaryKey;size:32"`
	Value int64  `gorm:"not null"`
}

// TableName specifies the database table name for sequence counters.
func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormOrderSequence allocates order numbers from a counter row. The single
// upsert increments and reads in one statement, so concurrent checkouts
// serialize on the row lock and never see the same number.
type GormOrderSequence struct {
	db *gorm.DB
}

// NewGormOrderSequence creates a new GORM-backed order number sequence.
func NewGormOrderSequence(db *gorm.DB) *GormOrderSequence {
	return &GormOrderSequence{db: db}
}

// Next returns the next order number, starting from 1.
func (s *GormOrderSequence) Next(ctx context.Context) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`, orderSequenceName).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
