package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingRepoPkg "github.com/Immortal-romantic/hotel-booking-api/database/repository/booking"
	roomRepoPkg "github.com/Immortal-romantic/hotel-booking-api/database/repository/room"
	"github.com/Immortal-romantic/hotel-booking-api/handlers"
	"github.com/Immortal-romantic/hotel-booking-api/models"
	"github.com/Immortal-romantic/hotel-booking-api/routes"
	"github.com/Immortal-romantic/hotel-booking-api/services/booking"
	"github.com/Immortal-romantic/hotel-booking-api/services/room"
)

var testToday = models.NewDate(2026, time.September, 1)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	roomRepo := roomRepoPkg.NewMemoryRoomRepo()
	bookingRepo := bookingRepoPkg.NewMemoryBookingRepo()

	roomService := &room.DefaultService{
		RoomRepo:    roomRepo,
		BookingRepo: bookingRepo,
		Logger:      zap.NewNop(),
	}
	engine := booking.NewDefaultEngine(roomRepo, bookingRepo, zap.NewNop())
	engine.Today = func() models.Date { return testToday }

	roomHandler := handlers.NewRoomHandler(roomService, engine)
	bookingHandler := handlers.NewBookingHandler(engine)

	bundle := &handlers.HandlerBundle{
		CreateRoomHandler:     roomHandler.CreateRoomHandler,
		ListRoomsHandler:      roomHandler.ListRoomsHandler,
		DeleteRoomHandler:     roomHandler.DeleteRoomHandler,
		DeleteRoomByIDHandler: roomHandler.DeleteRoomByIDHandler,
		CreateBookingHandler:  bookingHandler.CreateBookingHandler,
		ListBookingsHandler:   bookingHandler.ListBookingsHandler,
		DeleteBookingHandler:  bookingHandler.DeleteBookingHandler,
	}

	r := gin.New()
	routes.RegisterRoutes(r, bundle)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestBookingScenario(t *testing.T) {
	r := newTestRouter(t)
	tomorrow := testToday.AddDays(1)

	// Create the room.
	w := doRequest(t, r, http.MethodPost, "/rooms/create", gin.H{"description": "Suite", "price": "100.00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var roomResp struct {
		RoomID int64 `json:"room_id"`
	}
	decodeBody(t, w, &roomResp)
	assert.Equal(t, int64(1), roomResp.RoomID)

	// First booking succeeds.
	w = doRequest(t, r, http.MethodPost, "/bookings/create", gin.H{
		"room_id":    1,
		"date_start": tomorrow.String(),
		"date_end":   tomorrow.AddDays(2).String(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var bookingResp struct {
		BookingID int64 `json:"booking_id"`
	}
	decodeBody(t, w, &bookingResp)
	assert.Equal(t, int64(1), bookingResp.BookingID)

	// Overlapping booking conflicts.
	w = doRequest(t, r, http.MethodPost, "/bookings/create", gin.H{
		"room_id":    1,
		"date_start": tomorrow.String(),
		"date_end":   tomorrow.AddDays(3).String(),
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Back-to-back booking is allowed.
	w = doRequest(t, r, http.MethodPost, "/bookings/create", gin.H{
		"room_id":    1,
		"date_start": tomorrow.AddDays(2).String(),
		"date_end":   tomorrow.AddDays(4).String(),
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Both bookings are listed in start-date order with durations.
	w = doRequest(t, r, http.MethodGet, "/bookings/list?room_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.BookingListItem
	decodeBody(t, w, &items)
	require.Len(t, items, 2)
	assert.Equal(t, tomorrow.String(), items[0].DateStart)
	assert.Equal(t, 2, items[0].DurationDays)

	// Rooms list reflects the booking count.
	w = doRequest(t, r, http.MethodGet, "/rooms/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var roomsList []models.RoomListItem
	decodeBody(t, w, &roomsList)
	require.Len(t, roomsList, 1)
	assert.Equal(t, "100.00", roomsList[0].Price)
	assert.Equal(t, int64(2), roomsList[0].BookingsCount)
}

func TestDeleteRoomCascadesOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	tomorrow := testToday.AddDays(1)

	w := doRequest(t, r, http.MethodPost, "/rooms/create", gin.H{"description": "Suite", "price": "100.00"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/bookings/create", gin.H{
		"room_id":    1,
		"date_start": tomorrow.String(),
		"date_end":   tomorrow.AddDays(2).String(),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/rooms/delete", gin.H{"room_id": 1})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "room 1 and 1 bookings deleted", resp.Message)

	// Bookings of the deleted room are gone with it.
	w = doRequest(t, r, http.MethodGet, "/bookings/list?room_id=1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodPost, "/bookings/delete", gin.H{"booking_id": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRoomByPath(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/rooms/create", gin.H{"description": "Suite", "price": "100.00"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/rooms/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/rooms/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/rooms/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRoomBadInput(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing description", gin.H{"price": "100.00"}},
		{"missing price", gin.H{"description": "Suite"}},
		{"malformed price", gin.H{"description": "Suite", "price": "ten"}},
		{"non-positive price", gin.H{"description": "Suite", "price": "0"}},
		{"negative price", gin.H{"description": "Suite", "price": "-5.00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/rooms/create", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestCreateBookingBadInput(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/rooms/create", gin.H{"description": "Suite", "price": "100.00"})
	require.Equal(t, http.StatusCreated, w.Code)

	tomorrow := testToday.AddDays(1)
	tests := []struct {
		name string
		body gin.H
		code int
	}{
		{"missing room_id", gin.H{"date_start": tomorrow.String(), "date_end": tomorrow.AddDays(1).String()}, http.StatusBadRequest},
		{"missing dates", gin.H{"room_id": 1}, http.StatusBadRequest},
		{"malformed date", gin.H{"room_id": 1, "date_start": "01.09.2026", "date_end": tomorrow.String()}, http.StatusBadRequest},
		{"inverted range", gin.H{"room_id": 1, "date_start": tomorrow.AddDays(3).String(), "date_end": tomorrow.String()}, http.StatusBadRequest},
		{"past start", gin.H{"room_id": 1, "date_start": testToday.AddDays(-1).String(), "date_end": tomorrow.String()}, http.StatusBadRequest},
		{"unknown room", gin.H{"room_id": 99, "date_start": tomorrow.String(), "date_end": tomorrow.AddDays(1).String()}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/bookings/create", tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())

			var resp struct {
				Error string `json:"error"`
			}
			decodeBody(t, w, &resp)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestValidationReturnsAllReasons(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/rooms/create", gin.H{"description": "Suite", "price": "100.00"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Starts in the past AND inverted: both reasons come back at once.
	w = doRequest(t, r, http.MethodPost, "/bookings/create", gin.H{
		"room_id":    1,
		"date_start": testToday.AddDays(-1).String(),
		"date_end":   testToday.AddDays(-3).String(),
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	assert.Contains(t, resp.Error, "date_end must be after date_start")
	assert.Contains(t, resp.Error, "cannot book dates in the past")
}

func TestListRoomsBadParams(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/rooms/list?sort_by=description", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/rooms/list?order=sideways", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRoomsSortByPrice(t *testing.T) {
	r := newTestRouter(t)

	for i, price := range []string{"200.00", "50.00", "125.50"} {
		w := doRequest(t, r, http.MethodPost, "/rooms/create", gin.H{
			"description": fmt.Sprintf("room %d", i+1),
			"price":       price,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/rooms/list?sort_by=price&order=desc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.RoomListItem
	decodeBody(t, w, &items)
	require.Len(t, items, 3)
	assert.Equal(t, "200.00", items[0].Price)
	assert.Equal(t, "50.00", items[2].Price)
}

func TestListBookingsBadParams(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/bookings/list", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/bookings/list?room_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/bookings/list?room_id=5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndexAndHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hotel Booking API")

	w = doRequest(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
