package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/Gnaveen516/Trade-Opportunities-API/internal/middleware"
	"github.com/Gnaveen516/Trade-Opportunities-API/internal/model"
	"github.com/Gnaveen516/Trade-Opportunities-API/internal/report"
	"github.com/Gnaveen516/Trade-Opportunities-API/pkg/llm"
	"github.com/Gnaveen516/Trade-Opportunities-API/pkg/news"

	"github.com/gin-gonic/gin"
)

// ReportArchive persists generated reports. Saving is best-effort; a failed
// save never fails the request.
type ReportArchive interface {
	Save(report *model.Report) error
}

type AnalyzeHandler struct {
	news     news.SectorClient
	analyzer llm.Analyzer
	archive  ReportArchive
}

// NewAnalyzeHandler wires the sector-news source and the (retry-wrapped)
// analyzer. archive may be nil to disable persistence.
func NewAnalyzeHandler(newsClient news.SectorClient, analyzer llm.Analyzer, archive ReportArchive) *AnalyzeHandler {
	return &AnalyzeHandler{
		news:     newsClient,
		analyzer: analyzer,
		archive:  archive,
	}
}

func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	sector := c.Param("sector")
	if !validSector(sector) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sector name. Only alphanumeric characters and spaces are allowed."})
		return
	}

	ctx := c.Request.Context()
	identity := middleware.Identity(c)

	marketData, err := h.news.Fetch(ctx, sector)
	if err != nil {
		slog.Error("error collecting market data", "error", err, "sector", sector)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect market data for the specified sector."})
		return
	}

	prompt := llm.BuildAnalysisPrompt(sector, marketData)
	analysis, err := h.analyzer.Analyze(ctx, prompt)
	if err != nil {
		h.writeAnalyzerError(c, sector, err)
		return
	}

	now := time.Now()
	markdown, err := report.Render(report.Data{
		Sector:      sector,
		MarketData:  marketData,
		Analysis:    analysis,
		NewsSource:  h.news.Name(),
		GeneratedAt: now,
	})
	if err != nil {
		slog.Error("error rendering report", "error", err, "sector", sector)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
		return
	}

	if h.archive != nil {
		rep := &model.Report{
			Sector:     sector,
			Identity:   identity,
			MarketData: marketData,
			Analysis:   analysis,
			Markdown:   markdown,
			Provider:   h.analyzer.Name(),
			NewsSource: h.news.Name(),
			CreatedAt:  now,
		}
		if err := h.archive.Save(rep); err != nil {
			slog.Error("error archiving report", "error", err, "sector", sector)
		}
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}

func (h *AnalyzeHandler) writeAnalyzerError(c *gin.Context, sector string, err error) {
	slog.Error("analysis failed", "error", err, "sector", sector)

	apiErr, ok := llm.AsAPIError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
		return
	}

	switch apiErr.Kind {
	case llm.KindResponseParse:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error parsing model response: " + apiErr.Detail})
	case llm.KindUpstreamHTTP:
		c.JSON(apiErr.Status, gin.H{"error": "Model API HTTP error: " + apiErr.Detail})
	case llm.KindRetryExhausted:
		if cause, ok := llm.AsAPIError(apiErr.Cause); ok && cause.Kind == llm.KindTransport {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Model API request error: " + cause.Detail})
			return
		}
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Model API request timed out after multiple retries."})
	case llm.KindTransport, llm.KindUpstreamRateLimited:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Model API request error: " + apiErr.Detail})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
	}
}

// validSector allows alphanumeric sector names with internal spaces.
func validSector(sector string) bool {
	trimmed := strings.ReplaceAll(sector, " ", "")
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
