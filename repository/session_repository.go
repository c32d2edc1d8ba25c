package repository

import "negotiation-agent/domain"

// SessionRepository persists negotiation state between rounds. The engine
// itself is stateless; the HTTP layer owns the session lifecycle.
type SessionRepository interface {
	Get(id string) (domain.NegotiationSession, bool)
	Save(id string, session domain.NegotiationSession) error
}
