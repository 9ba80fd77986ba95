package storage

import "time"

// KVEntryModel is the GORM model for the kv_entries table
type KVEntryModel struct {
	CreatedAt time.Time
	Name      string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (KVEntryModel) TableName() string { return "kv_entries" }
