package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"route-refresh-service/internal/domain"
	"route-refresh-service/internal/platform/obs"
	"route-refresh-service/internal/ports"
	"strings"
)

// PostgresRouteRepository stores each session's current route as a
// JSONB payload keyed by session id. A session holds at most one route
// at a time; installing a route replaces the previous one wholesale.
type PostgresRouteRepository struct {
	DB *sql.DB
}

func NewPostgresRouteRepository(db *sql.DB) *PostgresRouteRepository {
	return &PostgresRouteRepository{DB: db}
}

// Retrieve the session's current route.
func (r *PostgresRouteRepository) GetRoute(ctx context.Context, sessionID string) (_ domain.Route, err error) {
	defer obs.Time(ctx, "routes.repo.GetRoute")(&err)

	if r.DB == nil {
		return domain.Route{}, errors.New("route repository: db is nil")
	}
	if strings.TrimSpace(sessionID) == "" {
		return domain.Route{}, errors.New("get route: sessionID must be non-empty")
	}

	q := `
	SELECT route
	FROM session_routes
	WHERE session_id = $1;
	`

	var payload []byte
	if err := r.DB.QueryRowContext(ctx, q, sessionID).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Route{}, ports.ErrRouteNotFound
		}
		return domain.Route{}, fmt.Errorf("get route: query session_routes table: %w", err)
	}

	var route domain.Route
	if err := json.Unmarshal(payload, &route); err != nil {
		return domain.Route{}, fmt.Errorf("get route: decode stored route: %w", err)
	}

	return route, nil
}

// Install or replace the session's current route.
func (r *PostgresRouteRepository) PutRoute(ctx context.Context, sessionID string, route domain.Route) (err error) {
	defer obs.Time(ctx, "routes.repo.PutRoute")(&err)

	if r.DB == nil {
		return errors.New("route repository: db is nil")
	}
	if strings.TrimSpace(sessionID) == "" {
		return errors.New("put route: sessionID must be non-empty")
	}
	if err := route.Validate(); err != nil {
		return fmt.Errorf("put route: %w", err)
	}

	payload, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("put route: encode route: %w", err)
	}

	q := `
	INSERT INTO session_routes (session_id, route, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (session_id) DO UPDATE
	SET route = EXCLUDED.route,
		updated_at = EXCLUDED.updated_at;
	`

	if _, err := r.DB.ExecContext(ctx, q, sessionID, payload); err != nil {
		return fmt.Errorf("put route: upsert session_routes table: %w", err)
	}

	return nil
}
