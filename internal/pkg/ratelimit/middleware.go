package ratelimit

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gideonbanks/needed/internal/pkg/apperr"
	"github.com/gideonbanks/needed/internal/utils"
)

// ClientKey derives the rate-limit key for a request: the first hop of
// X-Forwarded-For, then X-Real-IP. In production a request with neither
// header is rejected rather than bucketed; elsewhere a header-derived dev
// key keeps local testing workable.
func ClientKey(c echo.Context, production bool) (string, bool) {
	if forwarded := c.Request().Header.Get("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip, true
		}
	}
	if realIP := c.Request().Header.Get("X-Real-IP"); realIP != "" {
		return realIP, true
	}

	if production {
		return "", false
	}

	userAgent := c.Request().Header.Get("User-Agent")
	if userAgent == "" {
		userAgent = "unknown"
	}
	return "dev:" + userAgent + ":" + c.Request().Header.Get("Accept-Language"), true
}

// Middleware applies the limiter to a route and sets the X-RateLimit
// headers on every response it sees, admitted or not.
func Middleware(limiter *Limiter, limit int, production bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := ClientKey(c, production)
			if !ok {
				return utils.WriteError(c, apperr.Validation("Unable to verify request origin."))
			}

			admitted, remaining, retryAfter := limiter.Admit(key, time.Now())
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if !admitted {
				return utils.WriteError(c, apperr.RateLimited(retryAfter.Round(time.Second)))
			}
			return next(c)
		}
	}
}
