package model

import "time"

type Report struct {
	ID         int64
	Sector     string
	Identity   string
	MarketData string
	Analysis   string
	Markdown   string
	Provider   string
	NewsSource string
	CreatedAt  time.Time
}
