package middleware

import (
	"github.com/labstack/echo/v4"
)

const (
	defaultCSP = "default-src 'self'"
	// fragmentCSP applies to HTML fragments embedded by the app page
	fragmentCSP = "default-src 'none'; style-src 'self'; frame-ancestors 'self'"
)

// SecurityHeaders adds security headers to responses. Routes listed in
// fragmentPaths serve embeddable HTML and get a fragment policy instead of DENY framing.
func SecurityHeaders(fragmentPaths ...string) echo.MiddlewareFunc {
	fragments := make(map[string]struct{}, len(fragmentPaths))
	for _, path := range fragmentPaths {
		fragments[path] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set("X-Content-Type-Options", "nosniff")
			header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			header.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			header.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			if _, ok := fragments[c.Path()]; ok {
				header.Set("X-Frame-Options", "SAMEORIGIN")
				header.Set("Content-Security-Policy", fragmentCSP)
			} else {
				header.Set("X-Frame-Options", "DENY")
				header.Set("Content-Security-Policy", defaultCSP)
			}

			// Financial data must not be cached
			header.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
			header.Set("Pragma", "no-cache")
			header.Set("Expires", "0")

			return next(c)
		}
	}
}
