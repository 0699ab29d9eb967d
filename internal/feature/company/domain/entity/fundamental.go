// Package entity defines the domain models for the company feature.
package entity

import "time"

// FundamentalRow is one period of the provider's ratio dataset.
// Fields are nil when the provider sent null or omitted the column.
type FundamentalRow struct {
	MarketCap *float64
	PE        *float64
	PB        *float64
	EPS       *float64
	ROE       *float64
}

// CompanyInfo holds the headline ratios of the most recent period.
type CompanyInfo struct {
	MarketCap float64
	PERatio   float64
	PBRatio   float64
	EPS       float64
	ROE       float64
}

// CompanyProfile is CompanyInfo for Symbol at GeneratedAt.
type CompanyProfile struct {
	Symbol      string
	Info        CompanyInfo
	GeneratedAt time.Time
}
