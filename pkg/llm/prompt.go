package llm

import "fmt"

// BuildAnalysisPrompt frames the gathered market data for the model.
func BuildAnalysisPrompt(sector, marketData string) string {
	return fmt.Sprintf(`Analyze the following market data for the %s sector in India.
Identify key trends, growth drivers, challenges, and specific trade or investment opportunities.
Focus on actionable insights.

Market Data:
%s

Please provide a concise analysis, highlighting trade opportunities, in plain text format suitable for a markdown report.`, sector, marketData)
}
