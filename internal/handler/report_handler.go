package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Gnaveen516/Trade-Opportunities-API/internal/model"

	"github.com/gin-gonic/gin"
)

type ReportStore interface {
	GetRecent(limit, offset int) ([]model.Report, error)
	GetByID(id int64) (*model.Report, error)
	GetTotal() (int, error)
}

type ReportHandler struct {
	repository ReportStore
}

func NewReportHandler(repository ReportStore) *ReportHandler {
	return &ReportHandler{repository: repository}
}

func (h *ReportHandler) GetReports(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	reports, err := h.repository.GetRecent(limit, offset)
	if err != nil {
		slog.Error("error fetching reports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetTotal()
	if err != nil {
		slog.Error("error fetching report total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	reportRes := make([]ReportSummaryResponse, 0, len(reports))
	for _, rep := range reports {
		reportRes = append(reportRes, ReportSummaryResponse{
			ID:         rep.ID,
			Sector:     rep.Sector,
			Identity:   rep.Identity,
			Provider:   rep.Provider,
			NewsSource: rep.NewsSource,
			CreatedAt:  rep.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, ReportsResponse{
		Reports: reportRes,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	id := c.Param("id")

	reportID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid report id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	rep, err := h.repository.GetByID(reportID)
	if err != nil {
		slog.Error("error fetching report", "error", err, "report_id", reportID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if rep == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.JSON(http.StatusOK, SingleReportResponse{
		ID:         rep.ID,
		Sector:     rep.Sector,
		Identity:   rep.Identity,
		MarketData: rep.MarketData,
		Analysis:   rep.Analysis,
		Markdown:   rep.Markdown,
		Provider:   rep.Provider,
		NewsSource: rep.NewsSource,
		CreatedAt:  rep.CreatedAt.Format(time.RFC3339),
	})
}

func (h *ReportHandler) GetHealth(c *gin.Context) {
	if h.repository != nil {
		if _, err := h.repository.GetTotal(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
