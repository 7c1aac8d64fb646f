//go:build e2e

package reservation_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/handler/dto/request"
	"room-reservation/internal/handler/dto/response"
	"room-reservation/internal/usecase/commands"
	"room-reservation/tests/common/authtest"
	"room-reservation/tests/common/dbtest"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/v1/reservations"
	reservationURL  = "/api/v1/reservations/%s"
	statusURL       = "/api/v1/reservations/%s/status"
	cancelURL       = "/api/v1/reservations/%s/cancel"
	slotsURL        = "/api/v1/rooms/%s/slots?date=%s"
)

type ReservationSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// daysAhead is a calendar day in the booking zone.
func (s *ReservationSuite) daysAhead(n int) string {
	return time.Now().In(s.Config.Booking.Location()).AddDate(0, 0, n).Format("2006-01-02")
}

func (s *ReservationSuite) createRequest(roomID uuid.UUID, date, start, end string) request.CreateReservationRequest {
	note := "Projector please"
	return request.CreateReservationRequest{
		RoomID:              roomID,
		Date:                date,
		StartTime:           start,
		EndTime:             end,
		GuestCount:          4,
		SpecialRequirements: &note,
		ContactPhone:        "090-1234-5678",
		ContactName:         "Taro Yamada",
	}
}

func (s *ReservationSuite) mustCreate(token string, body request.CreateReservationRequest) response.CreateReservationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateReservationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// =============================================================================
// TestReservationLifecycle - create, confirm, cancel
// =============================================================================

func (s *ReservationSuite) TestReservationLifecycle() {
	s.Run("Normal case: booking flows from pending to a refunded cancellation", func() {
		t := s.T()
		customerID, customerToken := s.jwt.NewActorToken(t, user.RoleCustomer)
		_, staffToken := s.jwt.NewActorToken(t, user.RoleStaff)
		date := s.daysAhead(3)

		created := s.mustCreate(customerToken, s.createRequest(dbtest.StandardRoomID, date, "14:00", "16:00"))

		expected := &response.ReservationResponse{
			RoomID:              dbtest.StandardRoomID,
			RoomName:            "Standard Room",
			RoomType:            "standard",
			UserID:              customerID,
			Date:                date,
			StartTime:           "14:00",
			EndTime:             "16:00",
			GuestCount:          4,
			TotalAmountCents:    600000,
			Status:              "pending",
			SpecialRequirements: "Projector please",
			ContactPhone:        "090-1234-5678",
			ContactName:         "Taro Yamada",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &created.ReservationResponse, opts...); diff != "" {
			t.Errorf("created reservation mismatch (-want +got):\n%s", diff)
		}
		require.False(t, created.Replayed)
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.EventReservationCreated))

		// slot table reflects the booking
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, dbtest.StandardRoomID, date), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var table response.SlotTableResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &table))
		occupied := map[string]bool{}
		for _, slot := range table.Slots {
			occupied[slot.Label] = !slot.Available
		}
		require.True(t, occupied["14:00-16:00"])
		require.False(t, occupied["09:00-11:00"])

		// staff confirms
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(statusURL, created.ID),
			request.UpdateStatusRequest{Status: "confirmed"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var confirmed response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.Equal(t, "confirmed", confirmed.Status)

		// owner cancels three days ahead: full refund
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cancelled response.CancellationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cancelled))
		require.Equal(t, response.CancellationResponse{Success: true, RefundAmountCents: 600000}, cancelled)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.ID), nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var detail response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))
		require.Equal(t, "cancelled", detail.Status)
		require.NotNil(t, detail.RefundAmountCents)
		require.Equal(t, int64(600000), *detail.RefundAmountCents)
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.EventReservationCancelled))

		// the freed interval can be booked again
		s.mustCreate(customerToken, s.createRequest(dbtest.StandardRoomID, date, "14:00", "16:00"))
	})

	s.Run("Error case: cancelling twice reports failure with a reason", func() {
		t := s.T()
		_, token := s.jwt.NewActorToken(t, user.RoleCustomer)
		created := s.mustCreate(token, s.createRequest(dbtest.StandardRoomID, s.daysAhead(2), "09:00", "11:00"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, token)
		body := httptest.AssertErrorResponse(t, w, http.StatusConflict, "already cancelled")
		var detail response.CancellationResponse
		require.NoError(t, json.Unmarshal(body.Detail, &detail))
		require.False(t, detail.Success)
		require.NotEmpty(t, detail.Reason)
	})

	s.Run("Error case: another customer can neither read nor cancel", func() {
		t := s.T()
		_, ownerToken := s.jwt.NewActorToken(t, user.RoleCustomer)
		_, otherToken := s.jwt.NewActorToken(t, user.RoleCustomer)
		created := s.mustCreate(ownerToken, s.createRequest(dbtest.VIPRoomID, s.daysAhead(2), "19:00", "21:00"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.ID), nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestAdmission - overlap and room rules
// =============================================================================

func (s *ReservationSuite) TestAdmission() {
	s.Run("Overlap rules on one room and day", func() {
		t := s.T()
		_, token := s.jwt.NewActorToken(t, user.RoleCustomer)
		date := s.daysAhead(4)
		s.mustCreate(token, s.createRequest(dbtest.StandardRoomID, date, "14:00", "16:00"))

		cases := []struct {
			start, end string
			expect     int
		}{
			{start: "15:00", end: "17:00", expect: http.StatusConflict},
			{start: "13:00", end: "17:00", expect: http.StatusConflict},
			{start: "12:00", end: "14:00", expect: http.StatusCreated},
			{start: "16:00", end: "18:00", expect: http.StatusCreated},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
				s.createRequest(dbtest.StandardRoomID, date, tc.start, tc.end), token)
			require.Equal(t, tc.expect, w.Code, "%s-%s: %s", tc.start, tc.end, w.Body.String())
		}
		require.Equal(t, 3, dbtest.CountActiveReservations(t, s.DB, dbtest.StandardRoomID, date))
	})

	s.Run("Error case: room rules reject the request", func() {
		t := s.T()
		_, token := s.jwt.NewActorToken(t, user.RoleCustomer)
		date := s.daysAhead(4)

		crowd := s.createRequest(dbtest.StandardRoomID, date, "09:00", "11:00")
		crowd.GuestCount = 9
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, crowd, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			s.createRequest(dbtest.MaintenanceRoomID, date, "09:00", "11:00"), token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			s.createRequest(dbtest.StandardRoomID, date, "09:00", "10:30"), token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			s.createRequest(uuid.New(), date, "09:00", "11:00"), token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

		require.Equal(t, 0, dbtest.CountActiveReservations(t, s.DB, dbtest.StandardRoomID, date))
	})
}

// =============================================================================
// TestConcurrentAdmission - no double booking under contention
// =============================================================================

func (s *ReservationSuite) TestConcurrentAdmission() {
	s.Run("Concurrency: exactly one of many identical requests wins", func() {
		t := s.T()
		const attempts = 12
		date := s.daysAhead(5)

		requests := make([]*http.Request, attempts)
		for i := 0; i < attempts; i++ {
			_, token := s.jwt.NewActorToken(t, user.RoleCustomer)
			req, err := httptest.NewJSONRequest(http.MethodPost, reservationsURL,
				s.createRequest(dbtest.VIPRoomID, date, "19:00", "21:00"), token, nil)
			require.NoError(t, err)
			requests[i] = req
		}

		codes := make([]int, attempts)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, requests[i])
				codes[i] = w.Code
			}(i)
		}
		close(start)
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, attempts-1, conflicts, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountActiveReservations(t, s.DB, dbtest.VIPRoomID, date))
	})
}

// =============================================================================
// TestIdempotentCreate
// =============================================================================

func (s *ReservationSuite) TestIdempotentCreate() {
	s.Run("Normal case: a replay returns the original reservation", func() {
		t := s.T()
		_, token := s.jwt.NewActorToken(t, user.RoleCustomer)
		key := uuid.NewString()
		body := s.createRequest(dbtest.StandardRoomID, s.daysAhead(6), "11:30", "13:30")
		headers := map[string]string{"Idempotency-Key": key}

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, headers, token)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		httptest.AssertHeaders(t, first, map[string]string{"X-RateLimit-Limit": "1000"})
		var original response.CreateReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, first.Body, &original))

		replay := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, headers, token)
		require.Equal(t, http.StatusOK, replay.Code, replay.Body.String())
		var replayed response.CreateReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, replay.Body, &replayed))
		require.True(t, replayed.Replayed)
		require.Equal(t, original.ID, replayed.ID)

		require.Equal(t, 1, dbtest.CountActiveReservations(t, s.DB, dbtest.StandardRoomID, body.Date))
	})

	s.Run("Error case: reusing a key with a different body", func() {
		t := s.T()
		_, token := s.jwt.NewActorToken(t, user.RoleCustomer)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		date := s.daysAhead(6)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL,
			s.createRequest(dbtest.StandardRoomID, date, "16:30", "18:30"), headers, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL,
			s.createRequest(dbtest.StandardRoomID, date, "19:00", "21:00"), headers, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestUpdate
// =============================================================================

func (s *ReservationSuite) TestUpdate() {
	s.Run("Normal case: moving a reservation recomputes the total", func() {
		t := s.T()
		_, token := s.jwt.NewActorToken(t, user.RoleCustomer)
		date := s.daysAhead(7)
		created := s.mustCreate(token, s.createRequest(dbtest.StandardRoomID, date, "14:00", "16:00"))

		start, end := "14:00", "17:00"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(reservationURL, created.ID),
			request.UpdateReservationRequest{StartTime: &start, EndTime: &end}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "17:00", updated.EndTime)
		require.Equal(t, int64(900000), updated.TotalAmountCents)
	})

	s.Run("Error case: moving onto another booking", func() {
		t := s.T()
		_, token := s.jwt.NewActorToken(t, user.RoleCustomer)
		date := s.daysAhead(7)
		s.mustCreate(token, s.createRequest(dbtest.StandardRoomID, date, "09:00", "11:00"))
		second := s.mustCreate(token, s.createRequest(dbtest.StandardRoomID, date, "14:00", "16:00"))

		start, end := "10:00", "12:00"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(reservationURL, second.ID),
			request.UpdateReservationRequest{StartTime: &start, EndTime: &end}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestSearchAndStats
// =============================================================================

func (s *ReservationSuite) TestSearchAndStats() {
	s.Run("Normal case: search drops booked and closed rooms", func() {
		t := s.T()
		_, token := s.jwt.NewActorToken(t, user.RoleCustomer)
		date := s.daysAhead(8)
		s.mustCreate(token, s.createRequest(dbtest.StandardRoomID, date, "14:00", "16:00"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/v1/rooms/search?date="+date+"&start_time=14:00&end_time=16:00", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rooms []response.RoomAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		ids := make([]uuid.UUID, len(rooms))
		for i, r := range rooms {
			ids[i] = r.Room.ID
		}
		require.Equal(t, []uuid.UUID{dbtest.VIPRoomID}, ids)
	})

	s.Run("Normal case: search filters by capacity, features and type", func() {
		t := s.T()
		partyRoomID := dbtest.CreateTestRoom(t, s.DB, dbtest.RoomFixture{
			Name:            "Party Hall",
			Capacity:        30,
			Features:        "karaoke,stage",
			HourlyRateCents: 1200000,
			RoomType:        "vip",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/v1/rooms/search?capacity=20&features=karaoke&room_type=vip", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rooms []response.RoomAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.Len(t, rooms, 1)
		require.Equal(t, partyRoomID, rooms[0].Room.ID)
		require.Equal(t, "Party Hall", rooms[0].Room.Name)
	})

	s.Run("Authorization: stats need a privileged role", func() {
		t := s.T()
		_, customerToken := s.jwt.NewActorToken(t, user.RoleCustomer)
		_, adminToken := s.jwt.NewActorToken(t, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/stats", nil, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/stats", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Authorization: missing and expired tokens", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := s.jwt.CreateExpiredToken(t, uuid.New(), user.RoleCustomer)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
