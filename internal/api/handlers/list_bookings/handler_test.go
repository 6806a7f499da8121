package list_bookings

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

func TestParseFilter(t *testing.T) {
	admin := auth.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("defaults include completed and cancelled", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/admin/bookings", nil)

		req, err := parseFilter(r, admin)

		require.NoError(t, err)
		assert.True(t, req.IncludeInactive)
		assert.Nil(t, req.SpaceID)
		assert.Nil(t, req.UserID)
		assert.Nil(t, req.Status)
		assert.Nil(t, req.StartDate)
	})

	t.Run("includeInactive=false narrows to active bookings", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/admin/bookings?includeInactive=false", nil)

		req, err := parseFilter(r, admin)

		require.NoError(t, err)
		assert.False(t, req.IncludeInactive)
	})

	t.Run("date expands to a one day window", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/admin/bookings?date=2026-03-09", nil)

		req, err := parseFilter(r, admin)

		require.NoError(t, err)
		require.NotNil(t, req.StartDate)
		require.NotNil(t, req.EndDate)
		assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), *req.StartDate)
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), *req.EndDate)
	})

	t.Run("space and user filters parsed", func(t *testing.T) {
		spaceID := uuid.New()
		userID := uuid.New()
		r := httptest.NewRequest("GET",
			"/api/v1/admin/bookings?spaceId="+spaceID.String()+"&userId="+userID.String()+"&status=confirmed", nil)

		req, err := parseFilter(r, admin)

		require.NoError(t, err)
		require.NotNil(t, req.SpaceID)
		require.NotNil(t, req.UserID)
		require.NotNil(t, req.Status)
		assert.Equal(t, spaceID, *req.SpaceID)
		assert.Equal(t, userID, *req.UserID)
		assert.Equal(t, "confirmed", *req.Status)
	})

	t.Run("invalid space id rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/admin/bookings?spaceId=abc", nil)

		_, err := parseFilter(r, admin)

		assert.Error(t, err)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/admin/bookings?date=09-03-2026", nil)

		_, err := parseFilter(r, admin)

		assert.Error(t, err)
	})
}
