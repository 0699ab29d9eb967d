// Package entity defines the domain models for the prices feature.
package entity

import "time"

// Bar is one daily OHLCV observation as returned by the provider.
type Bar struct {
	Date   time.Time // Trading day
	Open   float64   // Opening price
	High   float64   // Highest price of the day
	Low    float64   // Lowest price of the day
	Close  float64   // Closing price
	Volume int64     // Matched volume
}

// Quote is the latest observation of a symbol.
type Quote struct {
	Symbol string // Upper-cased ticker (e.g. "VCB")
	Bar
}

// History is the ordered series of bars for a symbol over a date range.
type History struct {
	Symbol string
	Bars   []Bar
}
