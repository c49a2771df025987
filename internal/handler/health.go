package handler

import (
	"context"
	"time"

	"github.com/pkordes/trip-booking/backend/internal/handler/gen"
)

// readyTimeout bounds the database ping made by /readyz.
const readyTimeout = 2 * time.Second

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the process is running.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: gen.HealthResponseStatusOk}, nil
}

// GetReady handles GET /readyz.
// It returns 200 when the database answers a ping and 503 otherwise.
func (s *Server) GetReady(ctx context.Context, _ gen.GetReadyRequestObject) (gen.GetReadyResponseObject, error) {
	if s.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, readyTimeout)
		defer cancel()
		if err := s.db.Ping(pingCtx); err != nil {
			s.log.WarnContext(ctx, "readiness check failed", "error", err)
			return gen.GetReady503JSONResponse{Status: gen.HealthResponseStatusUnavailable}, nil
		}
	}
	return gen.GetReady200JSONResponse{Status: gen.HealthResponseStatusOk}, nil
}
