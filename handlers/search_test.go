package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/models"
	"stayhub/services/booking"
	"stayhub/services/geo"
	"stayhub/services/search"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSearchService struct {
	result *search.Result
	err    error
}

func (s *stubSearchService) Search(ctx context.Context, query models.SearchQuery) (*search.Result, error) {
	return s.result, s.err
}

type memSessionService struct {
	sessions map[string]*models.BookingSession
	refSeq   int
}

func newMemSessionService() *memSessionService {
	return &memSessionService{sessions: make(map[string]*models.BookingSession)}
}

func (m *memSessionService) Create(ctx context.Context, customerID string) (*models.BookingSession, error) {
	s := &models.BookingSession{
		SessionID:          "sess-" + customerID,
		CustomerID:         customerID,
		BookingReferenceID: booking.NewBookingReferenceID(customerID, time.Now()),
		CreatedAt:          time.Now(),
	}
	m.sessions[s.SessionID] = s
	return s, nil
}

func (m *memSessionService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, errors.New("booking session not found or expired")
	}
	return s, nil
}

func (m *memSessionService) Save(ctx context.Context, session *models.BookingSession) error {
	m.sessions[session.SessionID] = session
	return nil
}

func (m *memSessionService) EnsureActiveReference(ctx context.Context, session *models.BookingSession) (string, error) {
	if session.BookingReferenceID != "" && !session.ReferenceConsumed {
		return session.BookingReferenceID, nil
	}
	m.refSeq++
	session.BookingReferenceID = fmt.Sprintf("%s#fresh-%d", session.CustomerID, m.refSeq)
	session.ReferenceConsumed = false
	return session.BookingReferenceID, m.Save(ctx, session)
}

func (m *memSessionService) ConsumeReference(ctx context.Context, session *models.BookingSession) error {
	session.ReferenceConsumed = true
	return m.Save(ctx, session)
}

func (m *memSessionService) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func jsonBody(t *testing.T, body interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, jsonBody(t, body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func searchRouter(svc search.Service, sessions booking.SessionService) *gin.Engine {
	h := NewSearchHandler(svc, sessions, zap.NewNop())
	r := gin.New()
	r.POST("/api/hotels/search", h.SearchHotels)
	return r
}

func TestSearchHotels_OK(t *testing.T) {
	svc := &stubSearchService{result: &search.Result{
		Outcome:    search.OutcomeOK,
		Allocation: models.RoomAllocation{{Adults: 2, ChildrenAges: []int{}}},
		Hotels:     []models.HotelOffer{{Source: models.HotelSourceCatalog, HotelCode: "1001"}},
	}}
	router := searchRouter(svc, newMemSessionService())

	w := postJSON(t, router, "/api/hotels/search", gin.H{
		"destination": "Dubai, United Arab Emirates",
		"checkIn":     "2026-09-10",
		"checkOut":    "2026-09-12",
		"rooms":       1,
		"adults":      2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result search.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, search.OutcomeOK, result.Outcome)
	require.Len(t, result.Hotels, 1)
}

func TestSearchHotels_ValidationErrorNotRetryable(t *testing.T) {
	svc := &stubSearchService{err: &search.ValidationError{Field: "checkOut", Message: "check-out must be after check-in"}}
	router := searchRouter(svc, newMemSessionService())

	w := postJSON(t, router, "/api/hotels/search", gin.H{"destination": "Dubai"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["retryable"])
}

func TestSearchHotels_DestinationNotFoundRetryable(t *testing.T) {
	svc := &stubSearchService{err: geo.ErrNotFound}
	router := searchRouter(svc, newMemSessionService())

	w := postJSON(t, router, "/api/hotels/search", gin.H{"destination": "Nowhere"})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["retryable"])
}

func TestSearchHotels_AttachesQueryToSession(t *testing.T) {
	sessions := newMemSessionService()
	session, err := sessions.Create(context.Background(), "cust-1")
	require.NoError(t, err)

	alloc := models.RoomAllocation{{Adults: 2, ChildrenAges: []int{}}}
	svc := &stubSearchService{result: &search.Result{Outcome: search.OutcomeOK, Allocation: alloc}}
	router := searchRouter(svc, sessions)

	w := postJSON(t, router, "/api/hotels/search", gin.H{
		"sessionId":   session.SessionID,
		"destination": "Dubai, United Arab Emirates",
		"checkIn":     "2026-09-10",
		"checkOut":    "2026-09-12",
		"rooms":       1,
		"adults":      2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := sessions.Get(context.Background(), session.SessionID)
	require.NoError(t, err)
	require.NotNil(t, stored.Query)
	assert.Equal(t, "2026-09-10", stored.Query.CheckIn)
	assert.Equal(t, alloc, stored.Allocation)
}
