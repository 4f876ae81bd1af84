package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/verdantea/teahouse-web/middlewares"
	"github.com/verdantea/teahouse-web/models"
	"github.com/verdantea/teahouse-web/services"
	"github.com/verdantea/teahouse-web/utils"
	"github.com/verdantea/teahouse-web/wizard"
)

type WizardController struct {
	Tables       *services.TableService
	Customers    *services.CustomerService
	Reservations *services.ReservationService
}

func NewWizardController(tables *services.TableService, customers *services.CustomerService, reservations *services.ReservationService) *WizardController {
	return &WizardController{
		Tables:       tables,
		Customers:    customers,
		Reservations: reservations,
	}
}

// progressSteps feeds the step indicator above the wizard.
var progressSteps = []gin.H{
	{"Number": 1, "Title": "Date & Time"},
	{"Number": 2, "Title": "Guests"},
	{"Number": 3, "Title": "Table"},
	{"Number": 4, "Title": "Info"},
	{"Number": 5, "Title": "Confirm"},
}

func (wc *WizardController) draft(c *gin.Context) *wizard.Draft {
	return middlewares.CurrentSession(c).Draft
}

// Show renders whichever step the draft is on.
func (wc *WizardController) Show(c *gin.Context) {
	wc.render(c, wc.draft(c), "")
}

func (wc *WizardController) render(c *gin.Context, d *wizard.Draft, submitErr string) {
	base := gin.H{
		"Title": "Reserve a Table",
		"Steps": progressSteps,
		"Step":  int(d.Step),
		"Draft": d,
	}

	switch d.Step {
	case wizard.StepSelectDate:
		now := time.Now()
		base["Today"] = now.Format("2006-01-02")
		base["MaxDate"] = now.AddDate(0, wizard.MaxAdvanceMonths, 0).Format("2006-01-02")
		base["TimeSlots"] = wizard.TimeSlots
		base["SelectedDate"] = ""
		if !d.DateTime.IsZero() {
			base["SelectedDate"] = d.DateTime.Format("2006-01-02")
		}
		c.HTML(http.StatusOK, "wizard_date.tmpl", base)

	case wizard.StepSelectGuests:
		guests := d.NumberOfGuests
		if guests == 0 {
			guests = 2
		}
		base["Guests"] = guests
		base["Options"] = []int{1, 2, 3, 4, 5, 6, 7, 8}
		c.HTML(http.StatusOK, "wizard_guests.tmpl", base)

	case wizard.StepSelectTable:
		resp := wc.Tables.GetAvailable(c.Request.Context(), d.DateTime, d.NumberOfGuests)
		if redirectIfUnauthorized(c, resp.Status) {
			return
		}

		var tables []models.CafeTable
		fetchErr := ""
		if resp.OK() && resp.Data != nil {
			tables = *resp.Data
			d.ReconcileTable(tables)
			if len(tables) == 0 {
				fetchErr = "No tables available for the selected time and party size."
			}
		} else {
			fetchErr = "An error occurred while loading tables."
			utils.ErrorLogger.Printf("availability fetch failed: %s (status %d)", resp.Err, resp.Status)
		}
		base["Tables"] = tables
		base["FetchErr"] = fetchErr
		c.HTML(http.StatusOK, "wizard_table.tmpl", base)

	case wizard.StepCustomerInfo:
		c.HTML(http.StatusOK, "wizard_customer.tmpl", base)

	case wizard.StepConfirm:
		base["Error"] = submitErr
		base["DateLabel"] = d.DateTime.Format("January 2, 2006")
		base["Submitting"] = d.Submitting()
		c.HTML(http.StatusOK, "wizard_confirm.tmpl", base)

	case wizard.StepSuccess:
		base["DateLabel"] = d.DateTime.Format("January 2, 2006")
		c.HTML(http.StatusOK, "wizard_success.tmpl", base)
	}
}

// SubmitDate handles the date step form. An out-of-window choice simply
// re-renders the step; it is not an error condition.
func (wc *WizardController) SubmitDate(c *gin.Context) {
	d := wc.draft(c)
	if err := d.SetDateTime(time.Now(), c.PostForm("date"), c.PostForm("time")); err != nil {
		wc.render(c, d, "")
		return
	}
	c.Redirect(http.StatusFound, "/reserve")
}

func (wc *WizardController) SubmitGuests(c *gin.Context) {
	d := wc.draft(c)
	guests, err := strconv.Atoi(c.PostForm("guests"))
	if err != nil {
		guests = 2
	}
	d.SetGuests(guests)
	c.Redirect(http.StatusFound, "/reserve")
}

// SubmitTable re-checks the chosen table against a fresh availability
// query before accepting it.
func (wc *WizardController) SubmitTable(c *gin.Context) {
	d := wc.draft(c)

	id, err := strconv.ParseUint(c.PostForm("table_id"), 10, 32)
	if err != nil {
		wc.render(c, d, "")
		return
	}

	resp := wc.Tables.GetAvailable(c.Request.Context(), d.DateTime, d.NumberOfGuests)
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}

	var tables []models.CafeTable
	if resp.OK() && resp.Data != nil {
		tables = *resp.Data
	}
	if err := d.SetTable(uint(id), tables); err != nil {
		d.ReconcileTable(tables)
		wc.render(c, d, "")
		return
	}
	c.Redirect(http.StatusFound, "/reserve")
}

func (wc *WizardController) SubmitCustomer(c *gin.Context) {
	d := wc.draft(c)
	if err := d.SetCustomer(c.PostForm("name"), c.PostForm("phone")); err != nil {
		wc.render(c, d, "")
		return
	}
	c.Redirect(http.StatusFound, "/reserve")
}

// Confirm runs the two dependent create calls. Failure keeps the user on
// the confirm step with everything they entered intact.
func (wc *WizardController) Confirm(c *gin.Context) {
	d := wc.draft(c)

	backend := submitBackend{customers: wc.Customers, reservations: wc.Reservations}
	if err := d.Submit(c.Request.Context(), backend, backend); err != nil {
		if errors.Is(err, wizard.ErrSubmitInFlight) {
			c.Redirect(http.StatusFound, "/reserve")
			return
		}
		utils.ErrorLogger.Printf("reservation submit failed: %v", err)
		wc.render(c, d, "An error occurred. Please try again.")
		return
	}

	utils.InfoLogger.Printf("reservation created for %s, party of %d", d.CustomerName, d.NumberOfGuests)
	c.Redirect(http.StatusFound, "/reserve")
}

func (wc *WizardController) Back(c *gin.Context) {
	wc.draft(c).Back()
	c.Redirect(http.StatusFound, "/reserve")
}

func (wc *WizardController) Restart(c *gin.Context) {
	wc.draft(c).Reset()
	c.Redirect(http.StatusFound, "/reserve")
}

// submitBackend adapts the resource services to the wizard's two
// submission dependencies.
type submitBackend struct {
	customers    *services.CustomerService
	reservations *services.ReservationService
}

func (b submitBackend) CreateCustomer(ctx context.Context, dto models.CreateCustomer) (models.Customer, error) {
	resp := b.customers.Create(ctx, dto)
	if !resp.OK() || resp.Data == nil {
		return models.Customer{}, respError(resp.Err, "failed to create customer")
	}
	return *resp.Data, nil
}

func (b submitBackend) CreateReservation(ctx context.Context, dto models.CreateReservation) (models.Reservation, error) {
	resp := b.reservations.Create(ctx, dto)
	if !resp.OK() || resp.Data == nil {
		return models.Reservation{}, respError(resp.Err, "failed to create reservation")
	}
	return *resp.Data, nil
}

func respError(msg, fallback string) error {
	if msg == "" {
		msg = fallback
	}
	return errors.New(msg)
}
