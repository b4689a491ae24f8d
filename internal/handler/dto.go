package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReportSummaryResponse struct {
	ID         int64  `json:"id"`
	Sector     string `json:"sector"`
	Identity   string `json:"identity"`
	Provider   string `json:"provider"`
	NewsSource string `json:"news_source"`
	CreatedAt  string `json:"created_at"`
}

type ReportsResponse struct {
	Reports []ReportSummaryResponse `json:"reports"`
	Total   int                     `json:"total"`
	Limit   int                     `json:"limit"`
	Offset  int                     `json:"offset"`
}

type SingleReportResponse struct {
	ID         int64  `json:"id"`
	Sector     string `json:"sector"`
	Identity   string `json:"identity"`
	MarketData string `json:"market_data"`
	Analysis   string `json:"analysis"`
	Markdown   string `json:"markdown"`
	Provider   string `json:"provider"`
	NewsSource string `json:"news_source"`
	CreatedAt  string `json:"created_at"`
}

const (
	defaultQueryLimit = 20
	maxQueryLimit     = 100
)

func getQueryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultQueryLimit)))
	if err != nil || limit <= 0 {
		return defaultQueryLimit
	}
	if limit > maxQueryLimit {
		return maxQueryLimit
	}
	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
