package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

var (
	// Store will hold our session data
	Store *sessions.CookieStore
)

const (
	SessionName = "storefront-session"
	SessionKey  = "session_id"
)

// InitSessionStore initializes the session store with a secret key
func InitSessionStore(secretKey string) {
	Store = sessions.NewCookieStore([]byte(secretKey))
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7, // 7 days, matching the cart cookie
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionMiddleware assigns every visitor a stable session ID, used to
// key the checkout session registry.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := Store.Get(c.Request, SessionName)
		if err != nil {
			// If session is corrupted, create a new one
			session = sessions.NewSession(Store, SessionName)
		}

		sessionID, ok := session.Values[SessionKey].(string)
		if !ok || sessionID == "" {
			sessionID = generateSessionID()
			session.Values[SessionKey] = sessionID
			session.IsNew = true
		}

		if err := session.Save(c.Request, c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			c.Abort()
			return
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}

// generateSessionID generates a secure random session ID
func generateSessionID() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return hex.EncodeToString([]byte("fallback-session-id"))
	}
	return hex.EncodeToString(bytes)
}

// GetSessionID gets the session ID from gin context
func GetSessionID(c *gin.Context) string {
	sessionID, exists := c.Get("session_id")
	if !exists {
		return ""
	}
	return sessionID.(string)
}
