package Controllers_test

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantea/teahouse-web/models"
)

func bookableDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func wizardAPI() *fakeAPI {
	return &fakeAPI{
		availableTables: []models.CafeTable{
			{ID: 1, TableNumber: 1, Capacity: 2},
			{ID: 2, TableNumber: 4, Capacity: 4},
		},
	}
}

// advance walks the browser forward to the customer info step.
func advance(t *testing.T, b *browser) {
	t.Helper()

	w := b.post("/reserve/date", url.Values{"date": {bookableDate()}, "time": {"18:00"}})
	require.Equal(t, http.StatusFound, w.Code)

	w = b.post("/reserve/guests", url.Values{"guests": {"4"}})
	require.Equal(t, http.StatusFound, w.Code)

	w = b.post("/reserve/table", url.Values{"table_id": {"2"}})
	require.Equal(t, http.StatusFound, w.Code)
}

func TestWizardStartsOnDateStep(t *testing.T) {
	b := setup(t, wizardAPI())

	w := b.get("/reserve")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Select Date")
	assert.Contains(t, w.Body.String(), `name="date"`)
}

func TestWizardHappyPath(t *testing.T) {
	api := wizardAPI()
	b := setup(t, api)

	advance(t, b)

	w := b.get("/reserve")
	assert.Contains(t, w.Body.String(), "Your Information")

	w = b.post("/reserve/customer", url.Values{"name": {"Aiko Tanaka"}, "phone": {"090-1234-5678"}})
	require.Equal(t, http.StatusFound, w.Code)

	w = b.get("/reserve")
	body := w.Body.String()
	assert.Contains(t, body, "Review Your Reservation")
	assert.Contains(t, body, "Aiko Tanaka")
	assert.Contains(t, body, "18:00")

	w = b.post("/reserve/confirm", nil)
	require.Equal(t, http.StatusFound, w.Code)

	// Customer first, then the reservation referencing it.
	require.Len(t, api.createdCustomers, 1)
	require.Len(t, api.createdReservations, 1)
	assert.Equal(t, "Aiko Tanaka", api.createdCustomers[0].Name)
	assert.Equal(t, uint(1), api.createdReservations[0].CustomerID)
	assert.Equal(t, uint(2), api.createdReservations[0].CafeTableID)
	assert.Equal(t, 4, api.createdReservations[0].NumberOfGuests)

	w = b.get("/reserve")
	assert.Contains(t, w.Body.String(), "Reservation Confirmed")
}

func TestWizardRejectsPastDateSilently(t *testing.T) {
	b := setup(t, wizardAPI())

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	w := b.post("/reserve/date", url.Values{"date": {yesterday}, "time": {"18:00"}})

	// Not an error page, just the date step again.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Select Date")
}

func TestWizardGuestCountIsClamped(t *testing.T) {
	b := setup(t, wizardAPI())

	w := b.post("/reserve/date", url.Values{"date": {bookableDate()}, "time": {"18:00"}})
	require.Equal(t, http.StatusFound, w.Code)
	w = b.post("/reserve/guests", url.Values{"guests": {"50"}})
	require.Equal(t, http.StatusFound, w.Code)

	w = b.get("/reserve")
	assert.Contains(t, w.Body.String(), "party of "+strconv.Itoa(8))
}

func TestWizardNoTablesAvailable(t *testing.T) {
	api := wizardAPI()
	api.availableTables = []models.CafeTable{}
	b := setup(t, api)

	b.post("/reserve/date", url.Values{"date": {bookableDate()}, "time": {"18:00"}})
	b.post("/reserve/guests", url.Values{"guests": {"4"}})

	w := b.get("/reserve")
	body := w.Body.String()
	assert.Contains(t, body, "No tables available for the selected time and party size.")
	assert.NotContains(t, body, ">Next<")
}

func TestWizardRejectsTableNotOffered(t *testing.T) {
	api := wizardAPI()
	b := setup(t, api)

	b.post("/reserve/date", url.Values{"date": {bookableDate()}, "time": {"18:00"}})
	b.post("/reserve/guests", url.Values{"guests": {"4"}})

	w := b.post("/reserve/table", url.Values{"table_id": {"99"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Select a Table")
	assert.Empty(t, api.createdReservations)
}

func TestWizardBackKeepsLaterAnswers(t *testing.T) {
	b := setup(t, wizardAPI())
	advance(t, b)

	require.Equal(t, http.StatusFound, b.post("/reserve/customer", url.Values{"name": {"Aiko"}, "phone": {"090"}}).Code)

	// Back to customer info: the fields are still filled in.
	b.post("/reserve/back", nil)
	w := b.get("/reserve")
	assert.Contains(t, w.Body.String(), `value="Aiko"`)
	assert.Contains(t, w.Body.String(), `value="090"`)
}

func TestWizardCustomerCreateFailureStaysOnConfirm(t *testing.T) {
	api := wizardAPI()
	api.failCustomers = true
	b := setup(t, api)

	advance(t, b)
	b.post("/reserve/customer", url.Values{"name": {"Aiko"}, "phone": {"090"}})

	w := b.post("/reserve/confirm", nil)
	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "An error occurred. Please try again.")
	assert.Contains(t, body, "Review Your Reservation")
	assert.Contains(t, body, "Aiko")

	// The dependent call never went out.
	assert.Empty(t, api.createdReservations)
}

func TestWizardRestart(t *testing.T) {
	b := setup(t, wizardAPI())
	advance(t, b)

	w := b.post("/reserve/restart", nil)
	require.Equal(t, http.StatusFound, w.Code)

	w = b.get("/reserve")
	assert.Contains(t, w.Body.String(), "Select Date")
}
