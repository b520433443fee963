package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"mpincheck/internal/security"
	"mpincheck/internal/utils"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	rateLimiter       *security.RateLimiter
	csrf              *security.CSRFGenerator
	tokenIssuer       *security.TokenIssuer
	adminUsername     string
	adminPasswordHash string
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(rateLimiter *security.RateLimiter, csrf *security.CSRFGenerator, tokenIssuer *security.TokenIssuer, adminUsername, adminPasswordHash string) *Middleware {
	return &Middleware{
		rateLimiter:       rateLimiter,
		csrf:              csrf,
		tokenIssuer:       tokenIssuer,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

// EnsureSession sets an anonymous session cookie when none is present.
// The session ID only anchors CSRF tokens; nothing is stored server-side.
func (m *Middleware) EnsureSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(SessionCookieName); err != nil {
			sessionID := utils.GenerateSessionID()
			cookie := security.CreateSessionCookie(r, SessionCookieName, sessionID, time.Now().Add(24*time.Hour))
			http.SetCookie(w, cookie)
			r.AddCookie(cookie)
		}
		next(w, r)
	}
}

// CSRFProtect validates the CSRF token on state-changing form posts
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				respondWithError(w, http.StatusForbidden, ErrForbidden, "CSRF check without session", err)
				return
			}
			token := r.FormValue("csrf_token")
			if !m.csrf.ValidateToken(cookie.Value, token) {
				respondWithError(w, http.StatusForbidden, ErrForbidden, "CSRF token mismatch", nil)
				return
			}
		}
		next(w, r)
	}
}

// RateLimit rejects clients that exceed the configured request rate
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.rateLimiter.Allow(ip) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded for "+ip, nil)
			return
		}
		next(w, r)
	}
}

// RequireAPIToken validates the Authorization bearer token on API routes
func (m *Middleware) RequireAPIToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSONError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if _, err := m.tokenIssuer.Verify(tokenStr); err != nil {
			log.Printf("API token rejected: %v", err)
			writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next(w, r)
	}
}

// RequireAdmin enforces HTTP basic auth against the configured admin credentials
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || username != m.adminUsername || !utils.VerifyAdminPassword(m.adminPasswordHash, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="mpincheck admin"`)
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "admin auth failed", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Call next handler
		next.ServeHTTP(w, r)

		// Log request
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
