package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/arnizwnd/redis-tugas/internal/domain/auth"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PrincipalKey is the gin context key of the authenticated caller
const PrincipalKey = "principal"

// CacheStatusHeader reports whether a list response came from the cache
const CacheStatusHeader = "X-Cache"

// Auth rejects requests without a valid API token.
// Accepts "Authorization: Token <key>" and "Authorization: Bearer <key>".
func Auth(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := parseToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, auth.ErrMissingCredentials)
			return
		}

		principal, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				abortUnauthorized(c, err)
				return
			}

			log.Error().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("Token lookup failed")
			abortJSON(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Authentication backend unavailable")
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the caller set by Auth, or nil on public routes
func GetPrincipal(c *gin.Context) *auth.Principal {
	if v, exists := c.Get(PrincipalKey); exists {
		if p, ok := v.(*auth.Principal); ok {
			return p
		}
	}
	return nil
}

func parseToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", false
	}
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, err error) {
	log.Warn().
		Str("request_id", GetRequestID(c)).
		Str("path", c.Request.URL.Path).
		Str("reason", err.Error()).
		Msg("Unauthorized request")

	c.Header("WWW-Authenticate", "Token")
	abortJSON(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
}

// abortJSON writes the same error envelope as the response package
func abortJSON(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":       code,
			"message":    message,
			"request_id": GetRequestID(c),
			"timestamp":  time.Now(),
		},
	})
}
