package httpcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	appLogger "github.com/gamedesk/backend/pkg/logger"
)

type metaKey string

const (
	remoteAddrKey metaKey = "remote_addr"
	userAgentKey  metaKey = "user_agent"
)

// Adapter derives a deadline-bound stdlib context from a fasthttp request and
// carries the request ID through to logs and the response headers.
type Adapter struct {
	timeout time.Duration
}

func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{timeout: timeout}
}

// Attach builds the request-scoped context. The request ID is taken from the
// X-Request-ID header when the client supplies one and generated otherwise,
// and is always echoed back on the response.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)

	requestID := strings.TrimSpace(string(ctx.Request.Header.Peek("X-Request-ID")))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	stdCtx = appLogger.ContextWithRequestID(stdCtx, requestID)
	ctx.Response.Header.Set("X-Request-ID", requestID)

	if addr := ctx.RemoteAddr(); addr != nil {
		stdCtx = context.WithValue(stdCtx, remoteAddrKey, addr.String())
	}
	if ua := string(ctx.Request.Header.UserAgent()); ua != "" {
		stdCtx = context.WithValue(stdCtx, userAgentKey, ua)
	}
	return stdCtx, cancel
}

// RemoteAddr returns the caller address recorded by Attach, if any.
func RemoteAddr(ctx context.Context) string {
	addr, _ := ctx.Value(remoteAddrKey).(string)
	return addr
}

// UserAgent returns the client user agent recorded by Attach, if any.
func UserAgent(ctx context.Context) string {
	ua, _ := ctx.Value(userAgentKey).(string)
	return ua
}
