package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 5 * time.Second

// DBStatus is the payload of the /health/db endpoint: reachability of the
// record store plus enough pool numbers to spot connection starvation.
type DBStatus struct {
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
	ConnsInUse    int32  `json:"conns_in_use"`
	ConnsIdle     int32  `json:"conns_idle"`
	ConnsMax      int32  `json:"conns_max"`
	WaitedForConn string `json:"waited_for_conn"`
}

// HealthHandler reports whether the store behind the pool answers a ping.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
		defer cancel()

		st := pool.Stat()
		status := DBStatus{
			Status:        "ok",
			ConnsInUse:    st.AcquiredConns(),
			ConnsIdle:     st.IdleConns(),
			ConnsMax:      st.MaxConns(),
			WaitedForConn: st.AcquireDuration().String(),
		}

		if err := pool.Ping(ctx); err != nil {
			status.Status = "unreachable"
			status.Error = err.Error()
			return c.JSON(http.StatusServiceUnavailable, status)
		}
		return c.JSON(http.StatusOK, status)
	}
}
