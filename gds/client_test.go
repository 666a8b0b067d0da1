package gds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "agency", "secret", zap.NewNop())
}

func TestSearchHotels_NullBodyBecomesNoResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/hotel-search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})
	c := newTestClient(t, mux)

	resp, err := c.SearchHotels(context.Background(), SearchRequest{})
	require.NoError(t, err)
	assert.Equal(t, StatusCode(CodeNoResults), resp.Status.Code)
	assert.Empty(t, resp.HotelResult)
}

func TestDo_BasicAuthAndHeaders(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/hotel-search", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "agency", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"Status": {"Code": "200"}}`))
	})
	c := newTestClient(t, mux)

	_, err := c.SearchHotels(context.Background(), SearchRequest{})
	require.NoError(t, err)
}

func TestDo_NonSuccessKeepsBodyVerbatim(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/hotel-book", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "agency credit exhausted", http.StatusPaymentRequired)
	})
	c := newTestClient(t, mux)

	_, err := c.Book(context.Background(), BookRequest{})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusPaymentRequired, statusErr.HTTPStatus)
	assert.Contains(t, statusErr.Body, "agency credit exhausted")
}

func TestHotelDetails_NonNumericCode(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", "u", "p", zap.NewNop())
	_, err := c.HotelDetails(context.Background(), "not-a-number")
	assert.Error(t, err)
}

func TestPrebook_NullBodyIsRejection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/hotel-prebook", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})
	c := newTestClient(t, mux)

	resp, err := c.Prebook(context.Background(), "bk!x", "Limit")
	require.NoError(t, err)
	assert.NotEqual(t, StatusCode(CodeSuccess), resp.Status.Code)
}

func TestUpdateCustomer_EmptyResponseBodyOK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/customer/cust-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, mux)

	name := "Sami"
	err := c.UpdateCustomer(context.Background(), "cust-1", CustomerUpdate{FirstName: &name})
	assert.NoError(t, err)
}

func TestContextCancellationAbortsCall(t *testing.T) {
	block := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/hotel-search", func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	c := newTestClient(t, mux)
	t.Cleanup(func() { close(block) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.SearchHotels(ctx, SearchRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
