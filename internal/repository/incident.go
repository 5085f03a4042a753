package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/crisisops/crisis_response_system/internal/apperrors"
	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/crisisops/crisis_response_system/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const incidentCacheTTL = 5 * time.Minute

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const incidentColumns = `
	id,
	report_id,
	incident_type,
	severity,
	title,
	description,
	latitude,
	longitude,
	life_threatening,
	confidence_score,
	affected_population,
	status,
	created_at
`

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.ReportID,
		&incident.IncidentType,
		&incident.Severity,
		&incident.Title,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&incident.LifeThreatening,
		&incident.ConfidenceScore,
		&incident.AffectedPopulation,
		&incident.Status,
		&incident.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Insert creates a new incident record keyed by report_id. Returns false
// when an incident for the report already exists; the incident is left
// untouched in that case.
func (r *IncidentRepository) Insert(ctx context.Context, incident *models.Incident) (bool, error) {
	query := `
		INSERT INTO emergency_incidents
			(report_id, incident_type, severity, title, description, latitude, longitude,
			 life_threatening, confidence_score, affected_population, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (report_id) DO NOTHING
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ReportID,
		incident.IncidentType,
		incident.Severity,
		incident.Title,
		incident.Description,
		incident.Latitude,
		incident.Longitude,
		incident.LifeThreatening,
		incident.ConfidenceScore,
		incident.AffectedPopulation,
		incident.Status,
	).Scan(&incident.ID, &incident.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict on report_id: the report is already classified.
			return false, nil
		}
		return false, fmt.Errorf("failed to insert incident: %w", err)
	}
	return true, nil
}

// GetByReportID returns the incident created from the given report.
func (r *IncidentRepository) GetByReportID(ctx context.Context, reportID uuid.UUID) (*models.Incident, error) {
	query := fmt.Sprintf(`SELECT %s FROM emergency_incidents WHERE report_id = $1;`, incidentColumns)
	incident, err := scanIncident(r.db.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident for report %s: %w", reportID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by report id: %w", err)
	}
	return incident, nil
}

// GetByID returns an incident by its UUID.
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := fmt.Sprintf(`SELECT %s FROM emergency_incidents WHERE id = $1;`, incidentColumns)
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListActive returns all active incidents, newest first. The ranker depends
// on this fetch order for stable tie-breaking.
func (r *IncidentRepository) ListActive(ctx context.Context) ([]*models.Incident, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM emergency_incidents
		WHERE status = $1
		ORDER BY created_at DESC;
	`, incidentColumns)
	rows, err := r.db.Query(ctx, query, models.IncidentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during active incident iteration: %w", err)
	}
	return incidents, nil
}

// GetFromCache tries to read an incident from Redis. A cache miss returns
// (nil, nil).
func (r *IncidentRepository) GetFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetCache stores an incident in Redis with a short TTL.
func (r *IncidentRepository) SetCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}
