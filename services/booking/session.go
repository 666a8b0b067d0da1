package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stayhub/models"
	"stayhub/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// SessionService manages the booking session carried through the
// search → resolve → prebook → finalize chain. The session is the single
// holder of the customer's live booking reference; every mutation goes
// through this service, so two live references never coexist for one
// session.
type SessionService interface {
	Create(ctx context.Context, customerID string) (*models.BookingSession, error)
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Save(ctx context.Context, session *models.BookingSession) error
	EnsureActiveReference(ctx context.Context, session *models.BookingSession) (string, error)
	ConsumeReference(ctx context.Context, session *models.BookingSession) error
	Delete(ctx context.Context, sessionID string) error
}

// DefaultSessionService stores sessions in Redis as JSON with a TTL.
type DefaultSessionService struct {
	Cache *redis.Client
}

// Create starts a session for a customer and mints its first booking
// reference.
func (s *DefaultSessionService) Create(ctx context.Context, customerID string) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID:          uuid.New().String(),
		CustomerID:         customerID,
		BookingReferenceID: NewBookingReferenceID(customerID, time.Now()),
		CreatedAt:          time.Now(),
	}
	if err := s.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get retrieves a session by id.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, utils.SessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// Save writes the session back with a refreshed TTL.
func (s *DefaultSessionService) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.SessionKeyPrefix+session.SessionID, data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// EnsureActiveReference returns the session's live booking reference,
// minting a fresh one first if the previous reference was consumed. A new
// reference is only ever requested after the old one is consumed or
// abandoned.
func (s *DefaultSessionService) EnsureActiveReference(ctx context.Context, session *models.BookingSession) (string, error) {
	if session.BookingReferenceID != "" && !session.ReferenceConsumed {
		return session.BookingReferenceID, nil
	}
	ref := NewBookingReferenceID(session.CustomerID, time.Now())
	if ref == session.BookingReferenceID {
		// Rotation within the same clock second must still yield a distinct
		// reference.
		ref = NewBookingReferenceID(session.CustomerID, time.Now().Add(time.Second))
	}
	session.BookingReferenceID = ref
	session.ReferenceConsumed = false
	if err := s.Save(ctx, session); err != nil {
		return "", err
	}
	return session.BookingReferenceID, nil
}

// ConsumeReference invalidates the session's booking reference after a
// successful finalize. Reusing a consumed reference is an error, not
// silently tolerated; the next attempt obtains a fresh one through
// EnsureActiveReference.
func (s *DefaultSessionService) ConsumeReference(ctx context.Context, session *models.BookingSession) error {
	if session.BookingReferenceID == "" || session.ReferenceConsumed {
		return ErrReferenceConsumed
	}
	session.ReferenceConsumed = true
	return s.Save(ctx, session)
}

// Delete removes a session, abandoning any unconsumed reference.
func (s *DefaultSessionService) Delete(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, utils.SessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
