// Package entity defines the domain models for the quote feature.
package entity

// Quote is a point-in-time snapshot of an instrument at the quote provider.
type Quote struct {
	Symbol        string
	Price         float64
	PreviousClose float64
	DayHigh       float64
	DayLow        float64
	Volume        int64
	Currency      string
}

// Change returns the absolute move since the previous close.
func (q Quote) Change() float64 {
	return q.Price - q.PreviousClose
}

// ChangePercent returns the percentage move since the previous close, or
// zero when no previous close is available.
func (q Quote) ChangePercent() float64 {
	if q.PreviousClose == 0 {
		return 0
	}
	return (q.Price - q.PreviousClose) / q.PreviousClose * 100
}
