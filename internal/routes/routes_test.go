package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	"github.com/BruksfildServices01/reservation-api/internal/config"
	"github.com/BruksfildServices01/reservation-api/internal/db/dbtest"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
	Code       string          `json:"code"`
}

type apiClient struct {
	t *testing.T
	r *gin.Engine
}

func (a apiClient) do(method, path, token string, body any) (int, envelope) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (a apiClient) signupAndLogin(kind, loginID string) string {
	a.t.Helper()

	creds := map[string]string{"loginId": loginID, "password": "password123"}

	code, _ := a.do(http.MethodPost, "/api/auth/"+kind+"/signup", "", creds)
	require.Equal(a.t, http.StatusCreated, code)

	code, env := a.do(http.MethodPost, "/api/auth/"+kind+"/login", "", creds)
	require.Equal(a.t, http.StatusOK, code)

	var tok struct {
		AccessToken string `json:"accessToken"`
		TokenType   string `json:"tokenType"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &tok))
	require.Equal(a.t, "Bearer", tok.TokenType)
	return tok.AccessToken
}

type reservationBody struct {
	ID          uint      `json:"id"`
	GuestCount  int       `json:"guestCount"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	TotalAmount int       `json:"totalAmount"`
	Menus       []struct {
		ID uint `json:"id"`
	} `json:"menus"`
}

func newTestServer(t *testing.T) (apiClient, *audit.Dispatcher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := dbtest.New(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	dispatcher := audit.NewDispatcher(audit.New(gdb), 64)

	cfg := &config.Config{
		DBDriver:               "sqlite",
		JWTSecret:              "test-secret",
		JWTExpiresIn:           "1h",
		JWTTTL:                 time.Hour,
		Timezone:               "UTC",
		ReservationMinDuration: 30 * time.Minute,
		ReservationMaxDuration: 4 * time.Hour,
		MenuCacheTTL:           time.Minute,
		AuthRatePerMinute:      1000,
	}

	r := gin.New()
	require.NoError(t, RegisterRoutes(r, Deps{
		DB:     gdb,
		Config: cfg,
		Redis:  rdb,
		Audit:  dispatcher,
	}))

	return apiClient{t: t, r: r}, dispatcher
}

func TestHealth(t *testing.T) {
	api, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	w := httptest.NewRecorder()
	api.r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"server":"ok","sqlite":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAccessControl(t *testing.T) {
	api, _ := newTestServer(t)
	customer := api.signupAndLogin("customer", "alice")

	code, env := api.do(http.MethodGet, "/api/menus", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)

	code, _ = api.do(http.MethodGet, "/api/menus", customer, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = api.do(http.MethodGet, "/api/reservations/restaurant", customer, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = api.do(http.MethodPost, "/api/auth/customer/login", "", map[string]string{
		"loginId": "alice", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)

	// the restaurant namespace does not know alice
	code, _ = api.do(http.MethodPost, "/api/auth/restaurant/login", "", map[string]string{
		"loginId": "alice", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestReservationLifecycle(t *testing.T) {
	api, dispatcher := newTestServer(t)

	restaurant := api.signupAndLogin("restaurant", "bistro")
	c1 := api.signupAndLogin("customer", "alice")
	c2 := api.signupAndLogin("customer", "bobby")

	// --------------------------------------------------
	// menu
	// --------------------------------------------------
	code, env := api.do(http.MethodPost, "/api/menus", restaurant, map[string]any{
		"name": "Steak", "price": 8000, "category": "western", "description": "ribeye",
	})
	require.Equal(t, http.StatusCreated, code)
	var menu struct {
		ID             uint   `json:"id"`
		RestaurantName string `json:"restaurantName"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &menu))
	assert.Equal(t, "bistro", menu.RestaurantName)

	code, env = api.do(http.MethodGet, "/api/menus?category=western&minPrice=1000", restaurant, nil)
	require.Equal(t, http.StatusOK, code)
	var menus []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &menus))
	assert.Len(t, menus, 1)

	code, env = api.do(http.MethodGet, "/api/menus?minPrice=9000&maxPrice=1000", restaurant, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_price_range", env.Code)

	// --------------------------------------------------
	// create: book, overlap, boundary touch
	// --------------------------------------------------
	day := time.Now().UTC().Add(72 * time.Hour).Truncate(24 * time.Hour)
	at := func(h int) string { return day.Add(time.Duration(h) * time.Hour).Format(time.RFC3339) }

	book := func(token string, from, to int) (int, envelope) {
		return api.do(http.MethodPost, "/api/reservations", token, map[string]any{
			"restaurantId": 1,
			"startTime":    at(from),
			"endTime":      at(to),
			"phone":        "01012345678",
			"guestCount":   2,
			"menuIds":      []uint{menu.ID},
		})
	}

	code, env = book(c1, 19, 21)
	require.Equal(t, http.StatusCreated, code, string(env.Data))
	var first reservationBody
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.Equal(t, 8000, first.TotalAmount)
	require.Len(t, first.Menus, 1)

	code, env = book(c2, 20, 22)
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Success)

	code, _ = book(c2, 21, 22)
	require.Equal(t, http.StatusCreated, code)

	// --------------------------------------------------
	// update
	// --------------------------------------------------
	path := fmt.Sprintf("/api/reservations/%d", first.ID)

	code, env = api.do(http.MethodPut, path, c1, map[string]any{"guestCount": 6})
	require.Equal(t, http.StatusOK, code)
	var updated reservationBody
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 6, updated.GuestCount)
	assert.True(t, first.StartTime.Equal(updated.StartTime))
	assert.True(t, first.EndTime.Equal(updated.EndTime))

	code, _ = api.do(http.MethodPut, path, c2, map[string]any{"guestCount": 3})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = api.do(http.MethodPut, "/api/reservations/abc", c1, map[string]any{"guestCount": 3})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = api.do(http.MethodPut, path, c1, map[string]any{"menuIds": []uint{}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_request", env.Code)

	// --------------------------------------------------
	// lists
	// --------------------------------------------------
	code, env = api.do(http.MethodGet, "/api/reservations/restaurant?menuName=tea", restaurant, nil)
	require.Equal(t, http.StatusOK, code)
	var all []reservationBody
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 2)
	assert.True(t, all[0].StartTime.After(all[1].StartTime))

	code, env = api.do(http.MethodGet, "/api/reservations/customer?minGuestCount=5&date="+day.Format("2006-01-02"), c1, nil)
	require.Equal(t, http.StatusOK, code)
	var mine []reservationBody
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	// --------------------------------------------------
	// cancel
	// --------------------------------------------------
	code, _ = api.do(http.MethodDelete, path, c2, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = api.do(http.MethodDelete, path, c1, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	code, env = api.do(http.MethodGet, "/api/reservations/customer", c1, nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(env.Data))

	code, _ = api.do(http.MethodDelete, path, c1, nil)
	assert.Equal(t, http.StatusNotFound, code)

	// --------------------------------------------------
	// audit trail
	// --------------------------------------------------
	dispatcher.Close()

	code, env = api.do(http.MethodGet, "/api/audit-logs?entity=reservation", restaurant, nil)
	require.Equal(t, http.StatusOK, code)
	var page struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.EqualValues(t, 4, page.Total)
}

func TestCreateReservationValidation(t *testing.T) {
	api, _ := newTestServer(t)
	c1 := api.signupAndLogin("customer", "alice")

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing menus", map[string]any{
			"restaurantId": 1, "startTime": "2030-01-01T19:00:00Z", "endTime": "2030-01-01T21:00:00Z",
			"phone": "01012345678", "guestCount": 2, "menuIds": []uint{},
		}},
		{"bad phone", map[string]any{
			"restaurantId": 1, "startTime": "2030-01-01T19:00:00Z", "endTime": "2030-01-01T21:00:00Z",
			"phone": "12-34", "guestCount": 2, "menuIds": []uint{1},
		}},
		{"zero guests", map[string]any{
			"restaurantId": 1, "startTime": "2030-01-01T19:00:00Z", "endTime": "2030-01-01T21:00:00Z",
			"phone": "01012345678", "guestCount": 0, "menuIds": []uint{1},
		}},
		{"end before start", map[string]any{
			"restaurantId": 1, "startTime": "2030-01-01T21:00:00Z", "endTime": "2030-01-01T19:00:00Z",
			"phone": "01012345678", "guestCount": 2, "menuIds": []uint{1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := api.do(http.MethodPost, "/api/reservations", c1, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, env.Success)
		})
	}

	code, _ := api.do(http.MethodPost, "/api/reservations", c1, map[string]any{
		"restaurantId": 99, "startTime": "2030-01-01T19:00:00Z", "endTime": "2030-01-01T21:00:00Z",
		"phone": "01012345678", "guestCount": 2, "menuIds": []uint{1},
	})
	assert.Equal(t, http.StatusNotFound, code)
}
