package Controllers_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/verdantea/teahouse-web/apiclient"
	"github.com/verdantea/teahouse-web/models"
	"github.com/verdantea/teahouse-web/router"
	"github.com/verdantea/teahouse-web/session"
	"github.com/verdantea/teahouse-web/utils"
)

// fakeAPI is an in-memory stand-in for the reservation backend. It
// speaks just enough of the REST surface for the page tests and records
// the write calls it receives.
type fakeAPI struct {
	mu sync.Mutex

	menuItems       []models.MenuItem
	tables          []models.CafeTable
	availableTables []models.CafeTable
	customers       []models.Customer
	reservations    []models.Reservation

	createdCustomers    []models.CreateCustomer
	createdReservations []models.CreateReservation
	createdTables       []models.CreateCafeTable
	deletedReservations []uint
	calls               []string

	// failCustomers makes customer creation return a 409.
	failCustomers bool
	// failMenu makes the menu routes return a 500.
	failMenu bool
	// reject401 makes every authenticated resource call return 401.
	reject401 bool
}

func adminToken(t *testing.T) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(map[string]any{utils.UsernameClaim: "admin"})
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func (api *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "admin" || req.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid username or password"})
			return
		}
		writeJSON(w, http.StatusOK, models.LoginResponse{Token: adminToken(t), Username: req.Username})
	})

	mux.HandleFunc("/api/menuitems/popular", func(w http.ResponseWriter, r *http.Request) {
		if api.failMenu {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		popular := []models.MenuItem{}
		for _, m := range api.menuItems {
			if m.IsPopular {
				popular = append(popular, m)
			}
		}
		writeJSON(w, http.StatusOK, popular)
	})

	mux.HandleFunc("/api/menuitems", func(w http.ResponseWriter, r *http.Request) {
		if api.failMenu {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, api.menuItems)
	})

	mux.HandleFunc("/api/cafetables/available", func(w http.ResponseWriter, r *http.Request) {
		api.record("GET available?" + r.URL.RawQuery)
		writeJSON(w, http.StatusOK, api.availableTables)
	})

	mux.HandleFunc("/api/cafetables", func(w http.ResponseWriter, r *http.Request) {
		if api.reject401 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, api.tables)
		case http.MethodPost:
			var dto models.CreateCafeTable
			json.NewDecoder(r.Body).Decode(&dto)

			api.mu.Lock()
			api.createdTables = append(api.createdTables, dto)
			api.mu.Unlock()

			writeJSON(w, http.StatusCreated, models.CafeTable{
				ID:          uint(len(api.createdTables)),
				TableNumber: dto.TableNumber,
				Capacity:    dto.Capacity,
			})
		}
	})

	mux.HandleFunc("/api/cafetables/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(strings.TrimPrefix(r.URL.Path, "/api/cafetables/"), 10, 32)
		if err != nil || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		for _, tbl := range api.tables {
			if tbl.ID == uint(id) {
				writeJSON(w, http.StatusOK, tbl)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("/api/customers", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if api.reject401 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			writeJSON(w, http.StatusOK, api.customers)
		case http.MethodPost:
			var dto models.CreateCustomer
			json.NewDecoder(r.Body).Decode(&dto)

			api.mu.Lock()
			api.createdCustomers = append(api.createdCustomers, dto)
			api.mu.Unlock()
			api.record("POST customers")

			if api.failCustomers {
				writeJSON(w, http.StatusConflict, map[string]string{"message": "phone number already in use"})
				return
			}
			writeJSON(w, http.StatusCreated, models.Customer{
				ID:          uint(len(api.createdCustomers)),
				Name:        dto.Name,
				PhoneNumber: dto.PhoneNumber,
			})
		}
	})

	mux.HandleFunc("/api/reservations", func(w http.ResponseWriter, r *http.Request) {
		if api.reject401 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, api.reservations)
		case http.MethodPost:
			var dto models.CreateReservation
			json.NewDecoder(r.Body).Decode(&dto)

			api.mu.Lock()
			api.createdReservations = append(api.createdReservations, dto)
			api.mu.Unlock()
			api.record("POST reservations")

			writeJSON(w, http.StatusCreated, models.Reservation{ID: uint(len(api.createdReservations))})
		}
	})

	mux.HandleFunc("/api/reservations/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(strings.TrimPrefix(r.URL.Path, "/api/reservations/"), 10, 32)
		if err != nil || r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		api.mu.Lock()
		api.deletedReservations = append(api.deletedReservations, uint(id))
		api.mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func (api *fakeAPI) record(call string) {
	api.mu.Lock()
	api.calls = append(api.calls, call)
	api.mu.Unlock()
}

// browser drives the app like a cookie-keeping client.
type browser struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]string
}

func setup(t *testing.T, api *fakeAPI) *browser {
	t.Helper()

	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	backend := httptest.NewServer(api.handler(t))
	t.Cleanup(backend.Close)

	store := session.NewStore(0)
	client := apiclient.New(backend.URL, session.TokenSource{Store: store})

	return &browser{
		t:       t,
		router:  router.SetupRouter(store, client),
		cookies: map[string]string{},
	}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for name, value := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		b.cookies[ck.Name] = ck.Value
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form)
}

func (b *browser) login(t *testing.T) {
	t.Helper()
	w := b.post("/auth/login", url.Values{"username": {"admin"}, "password": {"secret"}})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin", w.Header().Get("Location"))
}

func ptr(s string) *string { return &s }
