package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/gds"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGeoResolver struct {
	code models.GeoCode
	err  error
}

func (s *stubGeoResolver) Resolve(ctx context.Context, destination string) (models.GeoCode, error) {
	return s.code, s.err
}

func upcomingStay() (string, string) {
	checkIn := time.Now().AddDate(0, 1, 0)
	return checkIn.Format("2006-01-02"), checkIn.AddDate(0, 0, 3).Format("2006-01-02")
}

func searchQuery() models.SearchQuery {
	checkIn, checkOut := upcomingStay()
	return models.SearchQuery{
		Destination: "Dubai, United Arab Emirates",
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Rooms:       2,
		Adults:      3,
		Children:    1,
		ChildrenAges: []int{8},
	}
}

func newSearchService(t *testing.T, hotelCodeListBody, searchBody string) (*DefaultSearchService, *string) {
	t.Helper()
	var capturedCodes string
	mux := http.NewServeMux()
	mux.HandleFunc("/HotelCodeList", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(hotelCodeListBody))
	})
	mux.HandleFunc("/hotel-search", func(w http.ResponseWriter, r *http.Request) {
		var req gds.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			capturedCodes = req.HotelCodes
		}
		w.Write([]byte(searchBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &DefaultSearchService{
		GDS:    gds.NewClient(srv.URL, "user", "pass", zap.NewNop()),
		Geo:    &stubGeoResolver{code: models.GeoCode{CountryCode: "AE", CityCode: "126632"}},
		Logger: zap.NewNop(),
	}, &capturedCodes
}

func TestSearch_HappyPath(t *testing.T) {
	svc, captured := newSearchService(t, `{
		"Status": {"Code": "200", "Message": "Success"},
		"HotelList": [
			{"HotelCode": "1001", "CityCode": "126632"},
			{"HotelCode": "2002", "CityCode": "999999"},
			{"HotelCode": "1002", "CityCode": "126632"}
		]
	}`, `{
		"Status": {"Code": "200", "Description": "Successful"},
		"HotelResult": [
			{"HotelCode": "1001", "HotelName": "Marina View", "Price": 420,
			 "Rooms": [{"BookingCode": "bk!1", "TotalFare": 390, "Currency": "AED"}]},
			{"HotelCode": "1002", "HotelName": "Old Town Inn", "Price": 180}
		]
	}`)

	result, err := svc.Search(context.Background(), searchQuery())
	require.NoError(t, err)

	assert.Equal(t, OutcomeOK, result.Outcome)
	assert.Equal(t, "126632", result.Geo.CityCode)
	// Hotels outside the resolved city are filtered out of the request.
	assert.Equal(t, "1001,1002", *captured)

	require.Len(t, result.Hotels, 2)
	live := result.Hotels[0]
	assert.Equal(t, models.HotelSourceLive, live.Source)
	require.NotNil(t, live.Room)
	assert.Equal(t, "bk!1", live.Room.BookingCode)
	assert.Equal(t, 390.0, live.Price)
	assert.True(t, live.HasRoomOffer())

	catalog := result.Hotels[1]
	assert.Equal(t, models.HotelSourceCatalog, catalog.Source)
	assert.Nil(t, catalog.Room)
	assert.Equal(t, 180.0, catalog.Price)
	assert.False(t, catalog.HasRoomOffer())

	// Only the live offer can go straight into booking-code resolution.
	assert.Equal(t, 1, result.Bookable)

	// The allocation is part of the result so later stages reuse it.
	assert.Equal(t, 3, result.Allocation.TotalAdults())
	assert.Equal(t, 1, result.Allocation.TotalChildren())
}

func TestSearch_NoRoomsIsEmptyState(t *testing.T) {
	svc, _ := newSearchService(t,
		`{"Status": {"Code": "200"}, "HotelList": [{"HotelCode": "1001", "CityCode": "126632"}]}`,
		`{"Status": {"Code": "201", "Description": "No Available rooms for given criteria"}}`)

	result, err := svc.Search(context.Background(), searchQuery())
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoRooms, result.Outcome)
	assert.Empty(t, result.Hotels)
	assert.NotEmpty(t, result.Description)
}

func TestSearch_NullResponseIsNoResults(t *testing.T) {
	svc, _ := newSearchService(t,
		`{"Status": {"Code": "200"}, "HotelList": [{"HotelCode": "1001", "CityCode": "126632"}]}`,
		`null`)

	result, err := svc.Search(context.Background(), searchQuery())
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoResults, result.Outcome)
	assert.Empty(t, result.Hotels)
}

func TestSearch_NoCityHotelsShortCircuits(t *testing.T) {
	svc, captured := newSearchService(t,
		`{"Status": {"Code": "200"}, "HotelList": [{"HotelCode": "2002", "CityCode": "999999"}]}`,
		`{}`)

	result, err := svc.Search(context.Background(), searchQuery())
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoResults, result.Outcome)
	// The live search never ran.
	assert.Empty(t, *captured)
}

func TestSearch_ValidationRunsBeforeNetwork(t *testing.T) {
	svc := &DefaultSearchService{
		GDS:    gds.NewClient("http://127.0.0.1:0", "u", "p", zap.NewNop()),
		Geo:    &stubGeoResolver{},
		Logger: zap.NewNop(),
	}

	q := searchQuery()
	q.CheckOut = q.CheckIn
	_, err := svc.Search(context.Background(), q)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSearch_HotelCodeCap(t *testing.T) {
	list := `{"Status": {"Code": "200"}, "HotelList": [`
	for i := 0; i < 30; i++ {
		if i > 0 {
			list += ","
		}
		list += `{"HotelCode": "` + string(rune('A'+i%26)) + `", "CityCode": "126632"}`
	}
	list += `]}`

	svc, captured := newSearchService(t, list,
		`{"Status": {"Code": "204", "Description": "No results"}}`)

	_, err := svc.Search(context.Background(), searchQuery())
	require.NoError(t, err)
	// At most 20 codes go into one live search.
	codes := *captured
	count := 1
	for _, c := range codes {
		if c == ',' {
			count++
		}
	}
	assert.Equal(t, 20, count)
}
