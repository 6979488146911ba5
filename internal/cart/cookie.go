package cart

import (
	"net/http"

	"github.com/gorilla/sessions"

	"storefront-backend/internal/models"
)

const (
	// CartCookieName is the signed cookie session holding the cart blob
	CartCookieName = "storefront_cart"

	cartSessionKey   = "cart"
	cartCookieMaxAge = 60 * 60 * 24 * 7 // 7 days
)

// NewCookieStore builds the signed cookie store backing cart persistence.
func NewCookieStore(secretKey string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cartCookieMaxAge,
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// CookiePersister persists the cart as a versioned JSON envelope inside a
// signed cookie session, scoped to one request/response pair.
type CookiePersister struct {
	store   sessions.Store
	request *http.Request
	writer  http.ResponseWriter
}

// NewCookiePersister creates a persister bound to the given request.
func NewCookiePersister(store sessions.Store, r *http.Request, w http.ResponseWriter) *CookiePersister {
	return &CookiePersister{store: store, request: r, writer: w}
}

// Load reads the cart blob from the cookie session. A missing cookie
// yields an empty cart; a cookie that fails signature or JSON decoding
// surfaces the error so the caller can reset to empty.
func (p *CookiePersister) Load() ([]models.CartLineItem, error) {
	session, err := p.store.Get(p.request, CartCookieName)
	if err != nil {
		return nil, err
	}
	payload, ok := session.Values[cartSessionKey].(string)
	if !ok || payload == "" {
		return nil, nil
	}
	return decodeItems(payload)
}

// Save writes the full item list back into the cookie session.
func (p *CookiePersister) Save(items []models.CartLineItem) error {
	payload, err := encodeItems(items)
	if err != nil {
		return err
	}
	session := p.session()
	session.Values[cartSessionKey] = payload
	return session.Save(p.request, p.writer)
}

// Clear expires the cart cookie.
func (p *CookiePersister) Clear() error {
	session := p.session()
	delete(session.Values, cartSessionKey)
	session.Options.MaxAge = -1
	return session.Save(p.request, p.writer)
}

// session fetches the cookie session, falling back to a fresh one when
// the existing cookie cannot be decoded.
func (p *CookiePersister) session() *sessions.Session {
	session, err := p.store.Get(p.request, CartCookieName)
	if err != nil {
		session = sessions.NewSession(p.store, CartCookieName)
		session.Options = &sessions.Options{
			Path:     "/",
			MaxAge:   cartCookieMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
	}
	return session
}
