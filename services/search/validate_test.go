package search

import (
	"testing"
	"time"

	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validateNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func validQuery() models.SearchQuery {
	return models.SearchQuery{
		Destination: "Dubai, United Arab Emirates",
		CheckIn:     "2026-03-15",
		CheckOut:    "2026-03-18",
		Rooms:       1,
		Adults:      2,
	}
}

func TestValidateQuery_OK(t *testing.T) {
	assert.NoError(t, ValidateQuery(validQuery(), validateNow))
}

func TestValidateQuery_CheckOutNotAfterCheckIn(t *testing.T) {
	q := validQuery()
	q.CheckOut = q.CheckIn
	err := ValidateQuery(q, validateNow)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "checkOut", verr.Field)
}

func TestValidateQuery_BadDateFormat(t *testing.T) {
	q := validQuery()
	q.CheckIn = "15/03/2026"
	var verr *ValidationError
	require.ErrorAs(t, ValidateQuery(q, validateNow), &verr)
	assert.Equal(t, "checkIn", verr.Field)
}

func TestValidateQuery_PastCheckIn(t *testing.T) {
	q := validQuery()
	q.CheckIn = "2026-03-01"
	q.CheckOut = "2026-03-05"
	var verr *ValidationError
	require.ErrorAs(t, ValidateQuery(q, validateNow), &verr)
	assert.Equal(t, "checkIn", verr.Field)
}

func TestValidateQuery_TooFarOut(t *testing.T) {
	q := validQuery()
	q.CheckIn = "2026-10-01"
	q.CheckOut = "2026-10-03"
	var verr *ValidationError
	require.ErrorAs(t, ValidateQuery(q, validateNow), &verr)
	assert.Equal(t, "checkIn", verr.Field)
}

func TestValidateQuery_StayTooLong(t *testing.T) {
	q := validQuery()
	q.CheckIn = "2026-03-15"
	q.CheckOut = "2026-05-01"
	var verr *ValidationError
	require.ErrorAs(t, ValidateQuery(q, validateNow), &verr)
	assert.Equal(t, "checkOut", verr.Field)
}

func TestValidateQuery_GuestCounts(t *testing.T) {
	q := validQuery()
	q.Rooms = 0
	assert.Error(t, ValidateQuery(q, validateNow))

	q = validQuery()
	q.Adults = 0
	assert.Error(t, ValidateQuery(q, validateNow))

	q = validQuery()
	q.Children = 2
	q.ChildrenAges = []int{5}
	var verr *ValidationError
	require.ErrorAs(t, ValidateQuery(q, validateNow), &verr)
	assert.Equal(t, "childrenAges", verr.Field)
}
