package news

import (
	"context"
	"strings"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

const maxBriefItems = 8

// FinnhubClient builds a sector brief from live market news, filtered by
// sector keyword. When nothing matches it falls back to the static catalog so
// the analysis prompt never goes out empty.
type FinnhubClient struct {
	client   *finnhub.DefaultApiService
	fallback *CatalogClient
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{
		client:   client,
		fallback: NewCatalogClient(),
	}
}

func (c *FinnhubClient) Name() string {
	return "FinnHub"
}

func (c *FinnhubClient) Fetch(ctx context.Context, sector string) (string, error) {
	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return "", err
	}

	keyword := strings.ToLower(sector)
	var b strings.Builder
	matched := 0

	for _, item := range res {
		if matched >= maxBriefItems {
			break
		}

		var headline, summary string
		if item.Headline != nil {
			headline = *item.Headline
		}
		if item.Summary != nil {
			summary = *item.Summary
		}

		if !strings.Contains(strings.ToLower(headline), keyword) &&
			!strings.Contains(strings.ToLower(summary), keyword) {
			continue
		}

		b.WriteString(headline)
		if summary != "" {
			b.WriteString(": ")
			b.WriteString(summary)
		}
		b.WriteString("\n")
		matched++
	}

	if matched == 0 {
		return c.fallback.Fetch(ctx, sector)
	}
	return strings.TrimSpace(b.String()), nil
}
