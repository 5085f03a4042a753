package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityLogRepository struct {
	db *pgxpool.Pool
}

func NewActivityLogRepository(db *pgxpool.Pool) service.ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Append writes one activity log entry. The log is append-only; there are
// no update or delete paths.
func (r *ActivityLogRepository) Append(ctx context.Context, entry *models.ActivityLogEntry) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal activity metadata: %w", err)
	}

	query := `
		INSERT INTO crisis_activity_log (incident_id, activity_type, description, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	err = r.db.QueryRow(ctx, query,
		entry.IncidentID,
		entry.ActivityType,
		entry.Description,
		metadata,
	).Scan(&entry.ID, &entry.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append activity log entry: %w", err)
	}
	return nil
}
