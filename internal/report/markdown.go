package report

import (
	"strings"
	"text/template"
	"time"
)

// Data carries everything the markdown report needs.
type Data struct {
	Sector      string
	MarketData  string
	Analysis    string
	NewsSource  string
	GeneratedAt time.Time
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"title": titleCase,
}).Parse(`# Market Analysis Report: {{title .Sector}} Sector in India

**Date:** {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}
**Data Source:** {{.NewsSource}}

---

## Current Market Data & News Summary

The following information was gathered from recent market data and news articles related to the {{title .Sector}} sector in India:

{{.MarketData}}

---

## AI-Powered Trade Opportunity Insights

Based on the latest market information, the AI model provides the following insights and potential trade opportunities for the {{title .Sector}} sector:

{{.Analysis}}

---

## Key Takeaways & Recommendations

* **Overall Outlook:** [Summarize the overall trend based on AI analysis]
* **High-Potential Areas:** [List specific sub-sectors or business models identified by AI]
* **Risks/Challenges:** [Mention challenges identified by AI]
* **Consider for Investment/Action:** [Specific actionable advice if provided by AI, otherwise a general prompt]

---

**Disclaimer:** This report is generated by an AI model based on available data and should not be considered financial advice. Always conduct your own thorough research and consult with financial professionals before making any investment decisions.
`))

// Render produces the markdown report body.
func Render(data Data) (string, error) {
	var b strings.Builder
	if err := reportTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		words[i] = strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}
