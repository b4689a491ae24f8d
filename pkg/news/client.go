package news

import "context"

// SectorClient returns a free-text brief of recent news for a market sector.
type SectorClient interface {
	Fetch(ctx context.Context, sector string) (string, error)
	Name() string
}
