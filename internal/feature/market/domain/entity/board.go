// Package entity defines the domain models for the market feature.
package entity

import "time"

// BoardRow is one row of the provider's market board.
// Numeric cells are nil when the provider sent null or omitted the column.
type BoardRow struct {
	Symbol        string
	Price         *float64
	Change        *float64
	ChangePercent *float64
	Volume        *int64
}

// MarketRow is a board row with every numeric field resolved.
type MarketRow struct {
	Symbol        string
	Price         float64
	Change        float64
	ChangePercent float64
	Volume        int64
}

// MarketOverview is the top of the board at GeneratedAt.
type MarketOverview struct {
	Rows        []MarketRow
	GeneratedAt time.Time
}
