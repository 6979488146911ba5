package checkout

import (
	"sync"

	"github.com/rs/zerolog"

	"storefront-backend/internal/order"
	"storefront-backend/internal/shipping"
)

// Session pairs one checkout session's order draft with its quoter. The
// quoter publishes fees straight into the draft.
type Session struct {
	Draft  *order.Draft
	Quoter *shipping.Quoter
}

// Manager hands out one checkout session per browser session ID,
// creating it on first use. Mirrors the get-or-create shape of the cart
// session layer this replaced.
type Manager struct {
	client shipping.FeeCalculator
	log    zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session registry.
func NewManager(client shipping.FeeCalculator, log zerolog.Logger) *Manager {
	return &Manager{
		client:   client,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Session returns the checkout session for the given session ID,
// creating it when none exists yet.
func (m *Manager) Session(sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[sessionID]; ok {
		return session
	}

	draft := order.NewDraft()
	session := &Session{
		Draft:  draft,
		Quoter: shipping.NewQuoter(m.client, draft, m.log),
	}
	m.sessions[sessionID] = session
	return session
}
