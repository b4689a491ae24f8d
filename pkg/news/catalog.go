package news

import (
	"context"
	"fmt"
	"strings"
)

// sectorBriefs is a static stand-in for a real news or market-data API.
var sectorBriefs = map[string]string{
	"pharmaceuticals": "Recent news for pharmaceuticals in India: Strong growth in generic drugs, increased R&D investments, regulatory changes, and rising demand for healthcare. Key players like Sun Pharma, Dr. Reddy's Laboratories, and Cipla are expanding. Export opportunities in Africa and Southeast Asia. Government policies supporting 'Make in India' for pharma. Challenges include price controls and competition.",
	"technology":      "Recent news for technology in India: Booming IT services, significant startup funding, focus on AI, ML, and cybersecurity. Digital transformation driving demand. Companies like TCS, Infosys, and Wipro are leading. Fintech and EdTech sectors are experiencing rapid expansion. Talent acquisition and infrastructure development are key areas. Increased foreign investment in tech startups.",
	"agriculture":     "Recent news for agriculture in India: Monsoon season outlook, government subsidies for farmers, adoption of modern farming techniques, challenges with climate change and supply chain. Focus on crop diversification, food processing, and agritech startups. Export demand for spices, rice, and fresh produce. Initiatives like e-NAM are digitalizing markets.",
	"automotive":      "Recent news for automotive in India: Shift towards electric vehicles (EVs), increased production for domestic and export markets, supply chain disruptions from chip shortages. Strong demand for SUVs. Maruti Suzuki, Tata Motors, and Hyundai are dominant. Government incentives for EV manufacturing and adoption. Focus on reducing emissions and localizing production.",
	"finance":         "Recent news for finance in India: Digital payments boom, expansion of fintech services, rising credit demand, regulatory reforms in banking sector. Public sector banks undergoing reforms. Increased foreign direct investment in financial services. Challenges include NPAs and cybersecurity threats. UPI transactions continue to break records.",
}

// CatalogClient serves sector briefs from the static catalog. Sectors without
// an entry get a generic fallback line rather than an error.
type CatalogClient struct{}

func NewCatalogClient() *CatalogClient {
	return &CatalogClient{}
}

func (c *CatalogClient) Name() string {
	return "Catalog"
}

func (c *CatalogClient) Fetch(_ context.Context, sector string) (string, error) {
	if brief, ok := sectorBriefs[strings.ToLower(sector)]; ok {
		return brief, nil
	}
	return fmt.Sprintf("No specific current data found for %s. General market trends suggest economic growth and digital adoption.", sector), nil
}
