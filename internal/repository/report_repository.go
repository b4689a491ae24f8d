package repository

import (
	"database/sql"

	"github.com/Gnaveen516/Trade-Opportunities-API/internal/model"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Save(report *model.Report) error {
	return r.db.QueryRow(`
		INSERT INTO report(sector, identity, market_data, analysis, markdown, provider, news_source)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, report.Sector, report.Identity, report.MarketData, report.Analysis,
		report.Markdown, report.Provider, report.NewsSource,
	).Scan(&report.ID, &report.CreatedAt)
}

func (r *ReportRepository) GetRecent(limit, offset int) ([]model.Report, error) {
	rows, err := r.db.Query(`
		SELECT id, sector, identity, provider, news_source, created_at
		FROM report
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		var rep model.Report
		err := rows.Scan(&rep.ID, &rep.Sector, &rep.Identity, &rep.Provider, &rep.NewsSource, &rep.CreatedAt)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

func (r *ReportRepository) GetByID(id int64) (*model.Report, error) {
	var rep model.Report
	err := r.db.QueryRow(`
		SELECT id, sector, identity, market_data, analysis, markdown, provider, news_source, created_at
		FROM report
		WHERE id = $1
	`, id).Scan(&rep.ID, &rep.Sector, &rep.Identity, &rep.MarketData, &rep.Analysis,
		&rep.Markdown, &rep.Provider, &rep.NewsSource, &rep.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *ReportRepository) GetTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM report`).Scan(&total)
	return total, err
}
