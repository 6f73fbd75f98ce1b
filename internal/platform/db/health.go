package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// PoolStats is a point-in-time snapshot of the connection pool, reported
// by the health endpoint.
type PoolStats struct {
	TotalConns    int32  `json:"total_conns"`
	IdleConns     int32  `json:"idle_conns"`
	AcquiredConns int32  `json:"acquired_conns"`
	MaxConns      int32  `json:"max_conns"`
	AcquireCount  int64  `json:"acquire_count"`
	AcquireWait   string `json:"acquire_wait"`
}

// HealthReport is the health endpoint payload. Status is "ok" when the
// database answers a ping within the deadline and "unavailable" otherwise.
type HealthReport struct {
	Status      string     `json:"status"`
	PingLatency string     `json:"ping_latency,omitempty"`
	Error       string     `json:"error,omitempty"`
	Pool        *PoolStats `json:"pool,omitempty"`
}

// GetPoolStats snapshots the pool counters.
func GetPoolStats(pool *pgxpool.Pool) *PoolStats {
	stat := pool.Stat()
	return &PoolStats{
		TotalConns:    stat.TotalConns(),
		IdleConns:     stat.IdleConns(),
		AcquiredConns: stat.AcquiredConns(),
		MaxConns:      stat.MaxConns(),
		AcquireCount:  stat.AcquireCount(),
		AcquireWait:   stat.AcquireDuration().String(),
	}
}

// buildHealthReport assembles the payload from a ping outcome and a pool
// snapshot. Split out from the handler so it can be exercised without a
// live pool.
func buildHealthReport(pingErr error, latency time.Duration, stats *PoolStats) HealthReport {
	if pingErr != nil {
		return HealthReport{
			Status: "unavailable",
			Error:  pingErr.Error(),
			Pool:   stats,
		}
	}
	return HealthReport{
		Status:      "ok",
		PingLatency: latency.String(),
		Pool:        stats,
	}
}

// HealthHandler returns the handler for the database health endpoint.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		start := time.Now()
		err := pool.Ping(ctx)
		report := buildHealthReport(err, time.Since(start), GetPoolStats(pool))

		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, report)
		}
		return c.JSON(http.StatusOK, report)
	}
}
