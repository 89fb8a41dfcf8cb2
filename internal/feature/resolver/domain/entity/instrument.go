package entity

import "time"

// Instrument is one row of the persisted exchange listing. It is the
// durable fallback corpus the directory rebuilds from when the live
// listing download is unavailable.
type Instrument struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"size:20;not null;uniqueIndex"` // exchange-qualified, e.g. "RELIANCE.NS"
	Name      string    `gorm:"size:255;not null"`            // company name as listed
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
