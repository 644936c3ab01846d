package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the admin session cookie.
const SessionCookieName = "sc_admin"

// SessionTTL bounds how long an admin session stays valid.
const SessionTTL = 12 * time.Hour

// SessionManager issues and checks stateless admin session tokens. A token
// is base64url(expiryUnixMilli) + "." + base64url(HMAC-SHA256(secret, payload)),
// so no server-side session storage is needed and restarting the service
// does not log admins out.
type SessionManager struct {
	secret   []byte
	password string
	now      func() time.Time
}

// NewSessionManager creates a session manager. Pass nil for now to use the
// wall clock.
func NewSessionManager(secret, password string, now func() time.Time) *SessionManager {
	if now == nil {
		now = time.Now
	}
	return &SessionManager{
		secret:   []byte(secret),
		password: password,
		now:      now,
	}
}

// Authenticate checks the admin password in constant time.
func (m *SessionManager) Authenticate(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
}

// IssueToken creates a session token valid for SessionTTL.
func (m *SessionManager) IssueToken() string {
	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(strconv.FormatInt(m.now().Add(SessionTTL).UnixMilli(), 10)),
	)
	return payload + "." + m.sign(payload)
}

// ValidateToken checks the signature and expiry of a session token.
func (m *SessionManager) ValidateToken(token string) bool {
	payload, signature, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}

	if !hmac.Equal([]byte(signature), []byte(m.sign(payload))) {
		return false
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return false
	}

	expiresAt, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return false
	}

	return m.now().UnixMilli() < expiresAt
}

// SessionCookie builds the Set-Cookie value carrying a fresh session.
func (m *SessionManager) SessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    m.IssueToken(),
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds the Set-Cookie value that clears the session.
func (m *SessionManager) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// RequireSession is echo middleware gating the admin surface. Requests
// without a valid session cookie get 401 without touching the handler.
func (m *SessionManager) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(SessionCookieName)
		if err != nil || !m.ValidateToken(cookie.Value) {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Unauthorized",
			})
		}
		return next(ctx)
	}
}

func (m *SessionManager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	fmt.Fprint(mac, payload)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
