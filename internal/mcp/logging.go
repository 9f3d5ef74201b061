package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// requestLoggingMiddleware logs each incoming method with its params and
// outcome at debug level. Notifications get no response line.
func requestLoggingMiddleware(logger *slog.Logger) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			logger.Debug("mcp request", "method", method, "params", payloadJSON(requestParams(req)))

			result, err := next(ctx, method, req)
			if !strings.HasPrefix(method, "notifications/") {
				if err != nil {
					logger.Debug("mcp request failed", "method", method, "error", err)
				} else {
					logger.Debug("mcp response", "method", method, "result", payloadJSON(result))
				}
			}

			return result, err
		}
	}
}

func requestParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	return req.GetParams()
}

func payloadJSON(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
