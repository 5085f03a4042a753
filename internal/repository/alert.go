package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

// Create persists a new alert in pending state.
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO emergency_alerts
			(incident_id, alert_type, message, target_latitude, target_longitude, radius_km, broadcast_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.IncidentID,
		alert.AlertType,
		alert.Message,
		alert.TargetLatitude,
		alert.TargetLongitude,
		alert.RadiusKm,
		alert.BroadcastStatus,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// MarkSent transitions an alert to sent with its recipient count.
func (r *AlertRepository) MarkSent(ctx context.Context, id uuid.UUID, recipients int, sentAt time.Time) error {
	query := `
		UPDATE emergency_alerts SET
			broadcast_status = $1,
			recipients_count = $2,
			sent_at = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, models.BroadcastStatusSent, recipients, sentAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark alert as sent: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s not found for update", id)
	}
	return nil
}
