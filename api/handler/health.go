package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/gamedesk/backend/api/transport"
	"github.com/gamedesk/backend/internal/infrastructure/monitor"
	"github.com/gamedesk/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"services": map[string]interface{}{
			"storage": status.Storage,
			"journal": map[string]interface{}{
				"online":  status.Journal,
				"backlog": status.Backlog,
			},
		},
	}

	// A pending backlog means some mutations have not reached storage yet.
	// The service still works; clients see it as degraded, not down.
	if status.Storage && status.Backlog == 0 {
		h.respondSuccess(ctx, http.StatusOK, payload)
		return
	}
	h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewError("DEGRADED", "storage behind or unreachable", payload))
}
