package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// allowedSorts whitelists sortable columns; anything else falls back to
// created_at, which avoids unstable ordering when timestamp is NULL.
var allowedSorts = map[string]string{
	"timestamp":      "timestamp",
	"created_at":     "created_at",
	"latitude":       "latitude",
	"longitude":      "longitude",
	"accuracy":       "accuracy",
	"altitude":       "altitude",
	"velocity":       "velocity",
	"battery":        "battery",
	"battery_status": "battery_status",
}

// Location is a single row from the owntracks locations table. Nullable
// columns are pointers so absent values serialize as JSON null.
type Location struct {
	ID             int64      `json:"id"`
	DeviceID       string     `json:"device_id"`
	TID            *string    `json:"tid"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	Accuracy       *int32     `json:"accuracy"`
	Altitude       *float64   `json:"altitude"`
	Velocity       *int32     `json:"velocity"`
	Battery        *int32     `json:"battery"`
	BatteryStatus  *string    `json:"battery_status"`
	ConnectionType *string    `json:"connection_type"`
	Trigger        *string    `json:"trigger"`
	Timestamp      *time.Time `json:"timestamp"`
	CreatedAt      *time.Time `json:"created_at"`
	RawPayload     *string    `json:"raw_payload"`
}

// LocationQuery carries listing parameters; zero values get defaults.
type LocationQuery struct {
	Limit    int
	Offset   int
	Sort     string
	Order    string
	DeviceID string
}

// LocationStore reads location records through a shared pgx pool.
type LocationStore struct {
	pool *pgxpool.Pool
}

// NewLocationStore wraps an established pool.
func NewLocationStore(pool *pgxpool.Pool) *LocationStore {
	return &LocationStore{pool: pool}
}

// HealthCheck verifies connectivity and returns the server version.
func (s *LocationStore) HealthCheck(ctx context.Context) (string, error) {
	var version string
	if err := s.pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", fmt.Errorf("health check query failed: %w", err)
	}
	return version, nil
}

// Locations returns a page of location records. Sort and order are
// normalized against the whitelist; limit is clamped to [1, 100].
func (s *LocationStore) Locations(ctx context.Context, q LocationQuery) ([]Location, error) {
	limit := clampLimit(q.Limit)
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	sortCol := normalizeSort(q.Sort)
	order := normalizeOrder(q.Order)

	query := fmt.Sprintf(`
		SELECT id, device_id, tid, latitude, longitude,
		       accuracy, altitude, velocity, battery, battery_status,
		       connection_type, trigger, timestamp, created_at, raw_payload
		FROM public.locations
		%s
		ORDER BY %s %s
		LIMIT $1 OFFSET $2`, deviceFilter(q.DeviceID), sortCol, order)

	args := []any{limit, offset}
	if q.DeviceID != "" {
		args = append(args, q.DeviceID)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("locations query failed: %w", err)
	}
	defer rows.Close()

	var locations []Location
	for rows.Next() {
		var loc Location
		if err := rows.Scan(
			&loc.ID, &loc.DeviceID, &loc.TID, &loc.Latitude, &loc.Longitude,
			&loc.Accuracy, &loc.Altitude, &loc.Velocity, &loc.Battery, &loc.BatteryStatus,
			&loc.ConnectionType, &loc.Trigger, &loc.Timestamp, &loc.CreatedAt, &loc.RawPayload,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("locations query failed: %w", err)
	}

	return locations, nil
}

func deviceFilter(deviceID string) string {
	if deviceID == "" {
		return ""
	}
	return "WHERE device_id = $3"
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func normalizeSort(sort string) string {
	if col, ok := allowedSorts[sort]; ok {
		return col
	}
	return "created_at"
}

func normalizeOrder(order string) string {
	switch order {
	case "asc", "ASC":
		return "ASC"
	default:
		return "DESC"
	}
}
