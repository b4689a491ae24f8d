package report

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestRender(t *testing.T) {
	md, err := Render(Data{
		Sector:      "pharmaceuticals",
		MarketData:  "Generic drug exports rising.",
		Analysis:    "Consider generics manufacturers.",
		NewsSource:  "Catalog",
		GeneratedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(md, "# Market Analysis Report: Pharmaceuticals Sector in India"))
	assert.Equal(t, true, strings.Contains(md, "**Date:** 2026-03-01 12:00:00 UTC"))
	assert.Equal(t, true, strings.Contains(md, "Generic drug exports rising."))
	assert.Equal(t, true, strings.Contains(md, "Consider generics manufacturers."))
	assert.Equal(t, true, strings.Contains(md, "**Disclaimer:**"))
}

func TestRender_TakeawaysSection(t *testing.T) {
	md, err := Render(Data{
		Sector:      "finance",
		MarketData:  "data",
		Analysis:    "analysis",
		NewsSource:  "Catalog",
		GeneratedAt: time.Now(),
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(md, "## Key Takeaways & Recommendations"))
	assert.Equal(t, true, strings.Contains(md, "**Overall Outlook:**"))
	assert.Equal(t, true, strings.Contains(md, "**High-Potential Areas:**"))
	assert.Equal(t, true, strings.Contains(md, "**Risks/Challenges:**"))
	assert.Equal(t, true, strings.Contains(md, "**Consider for Investment/Action:**"))

	// Takeaways come after the analysis and before the disclaimer.
	takeaways := strings.Index(md, "## Key Takeaways")
	assert.Equal(t, true, strings.Index(md, "Trade Opportunity Insights") < takeaways)
	assert.Equal(t, true, takeaways < strings.Index(md, "**Disclaimer:**"))
}

func TestRender_MultiWordSector(t *testing.T) {
	md, err := Render(Data{
		Sector:      "renewable ENERGY",
		MarketData:  "data",
		Analysis:    "analysis",
		NewsSource:  "Catalog",
		GeneratedAt: time.Now(),
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(md, "Renewable Energy Sector in India"))
}
