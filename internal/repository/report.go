package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/crisisops/crisis_response_system/internal/apperrors"
	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// GetByID returns a citizen report by its UUID.
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report := &models.Report{}
	query := `
		SELECT id, title, description, category, latitude, longitude, pincode, status, created_at
		FROM reports
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.Title,
		&report.Description,
		&report.Category,
		&report.Latitude,
		&report.Longitude,
		&report.Pincode,
		&report.Status,
		&report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// CountActiveInArea counts active reports inside a lat/lng bounding box.
// Used for alert recipient estimation.
func (r *ReportRepository) CountActiveInArea(ctx context.Context, minLat, maxLat, minLng, maxLng float64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reports
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		  AND status = $5;
	`
	var count int
	err := r.db.QueryRow(ctx, query, minLat, maxLat, minLng, maxLng, models.ReportStatusReported).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports in area: %w", err)
	}
	return count, nil
}
