package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/verdantea/teahouse-web/adminview"
	"github.com/verdantea/teahouse-web/models"
	"github.com/verdantea/teahouse-web/services"
	"github.com/verdantea/teahouse-web/utils"
)

// AdminController drives the four CRUD tables on the dashboard. Each
// list fetches the whole collection and hands it to the adminview
// engine; no pagination, no server-side filtering, no optimistic
// updates; a delete or edit is followed by a plain refetch.
type AdminController struct {
	Menu         *services.MenuService
	Tables       *services.TableService
	Customers    *services.CustomerService
	Reservations *services.ReservationService
}

func NewAdminController(menu *services.MenuService, tables *services.TableService, customers *services.CustomerService, reservations *services.ReservationService) *AdminController {
	return &AdminController{
		Menu:         menu,
		Tables:       tables,
		Customers:    customers,
		Reservations: reservations,
	}
}

// sections feeds the segmented control on the dashboard.
var sections = []gin.H{
	{"ID": "reservations", "Label": "Reservations"},
	{"ID": "tables", "Label": "Tables"},
	{"ID": "customers", "Label": "Customers"},
	{"ID": "menu", "Label": "Menu Items"},
}

type FormField struct {
	Name    string
	Label   string
	Type    string
	Value   string
	Checked bool
}

func (ac *AdminController) Dashboard(c *gin.Context) {
	c.Redirect(http.StatusFound, "/admin/reservations")
}

func (ac *AdminController) renderList(c *gin.Context, section, label string, view adminview.View, searchHint string) {
	c.HTML(http.StatusOK, "admin_list.tmpl", gin.H{
		"Title":      "Admin Dashboard",
		"Sections":   sections,
		"Section":    section,
		"Label":      label,
		"View":       view,
		"SearchHint": searchHint,
		"Notice":     c.Query("notice"),
		"Error":      c.Query("error"),
	})
}

func (ac *AdminController) renderForm(c *gin.Context, section, title, action string, fields []FormField) {
	c.HTML(http.StatusOK, "admin_form.tmpl", gin.H{
		"Title":   title,
		"Section": section,
		"Action":  action,
		"Fields":  fields,
	})
}

func listRedirect(c *gin.Context, section, notice, errMsg string) {
	target := "/admin/" + section
	if notice != "" {
		target += "?notice=" + url.QueryEscape(notice)
	} else if errMsg != "" {
		target += "?error=" + url.QueryEscape(errMsg)
	}
	c.Redirect(http.StatusFound, target)
}

// --- Reservations ---

func reservationStart(r models.Reservation) time.Time {
	t, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

func reservationDescriptor() adminview.Descriptor[models.Reservation] {
	return adminview.Descriptor[models.Reservation]{
		Columns: []adminview.Column[models.Reservation]{
			{
				Key: "startTime", Label: "Date & Time", Sortable: true,
				Value: func(r models.Reservation) any { return reservationStart(r) },
				Cell:  func(r models.Reservation) string { return reservationStart(r).Format("Jan 2, 2006 3:04 PM") },
			},
			{
				Key: "customerName", Label: "Customer", Sortable: true,
				Value: func(r models.Reservation) any { return r.Customer.Name },
				Cell:  func(r models.Reservation) string { return r.Customer.Name },
			},
			{
				Key: "phone", Label: "Phone",
				Value: func(r models.Reservation) any { return r.Customer.PhoneNumber },
				Cell:  func(r models.Reservation) string { return r.Customer.PhoneNumber },
			},
			{
				Key: "numberOfGuests", Label: "Guests", Sortable: true,
				Value: func(r models.Reservation) any { return r.NumberOfGuests },
				Cell:  func(r models.Reservation) string { return strconv.Itoa(r.NumberOfGuests) },
			},
			{
				Key: "tableNumber", Label: "Table", Sortable: true,
				Value: func(r models.Reservation) any { return r.CafeTable.TableNumber },
				Cell:  func(r models.Reservation) string { return "#" + strconv.Itoa(r.CafeTable.TableNumber) },
			},
		},
		SearchFields: func(r models.Reservation) []string {
			return []string{r.Customer.Name, r.Customer.PhoneNumber, strconv.Itoa(r.CafeTable.TableNumber)}
		},
		ID: func(r models.Reservation) uint { return r.ID },
	}
}

func (ac *AdminController) ListReservations(c *gin.Context) {
	resp := ac.Reservations.GetAll(c.Request.Context())
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}

	var rows []models.Reservation
	if resp.Data != nil {
		rows = *resp.Data
	}
	q := viewQuery(c)
	if q.SortKey == "" && q.Search == "" {
		q.SortKey, q.SortDir = "startTime", adminview.SortDesc
	}
	ac.renderList(c, "reservations", "Reservations", adminview.Build(rows, q, reservationDescriptor()), "Search by customer, phone, or table...")
}

func reservationFields(r models.Reservation) []FormField {
	start := ""
	if t := reservationStart(r); !t.IsZero() {
		start = t.Format("2006-01-02T15:04")
	}
	guests := r.NumberOfGuests
	if guests == 0 {
		guests = 2
	}
	return []FormField{
		{Name: "startTime", Label: "Date & Time", Type: "datetime-local", Value: start},
		{Name: "numberOfGuests", Label: "Guests", Type: "number", Value: strconv.Itoa(guests)},
		{Name: "cafeTableId", Label: "Table ID", Type: "number", Value: strconv.Itoa(int(r.CafeTableID))},
		{Name: "customerId", Label: "Customer ID", Type: "number", Value: strconv.Itoa(int(r.CustomerID))},
	}
}

func reservationFromForm(c *gin.Context) (models.CreateReservation, error) {
	start, err := time.ParseInLocation("2006-01-02T15:04", c.PostForm("startTime"), time.Local)
	if err != nil {
		return models.CreateReservation{}, fmt.Errorf("invalid start time")
	}
	guests, err := strconv.Atoi(c.PostForm("numberOfGuests"))
	if err != nil {
		return models.CreateReservation{}, fmt.Errorf("invalid guest count")
	}
	tableID, err := strconv.ParseUint(c.PostForm("cafeTableId"), 10, 32)
	if err != nil {
		return models.CreateReservation{}, fmt.Errorf("invalid table id")
	}
	customerID, err := strconv.ParseUint(c.PostForm("customerId"), 10, 32)
	if err != nil {
		return models.CreateReservation{}, fmt.Errorf("invalid customer id")
	}
	return models.CreateReservation{
		StartTime:      start.Format(time.RFC3339),
		NumberOfGuests: guests,
		CafeTableID:    uint(tableID),
		CustomerID:     uint(customerID),
	}, nil
}

func (ac *AdminController) NewReservation(c *gin.Context) {
	ac.renderForm(c, "reservations", "New Reservation", "/admin/reservations", reservationFields(models.Reservation{}))
}

func (ac *AdminController) CreateReservation(c *gin.Context) {
	dto, err := reservationFromForm(c)
	if err != nil {
		listRedirect(c, "reservations", "", err.Error())
		return
	}
	resp := ac.Reservations.Create(c.Request.Context(), dto)
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "reservations", "", resp.Err)
		return
	}
	listRedirect(c, "reservations", "Reservation created", "")
}

func (ac *AdminController) EditReservation(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	resp := ac.Reservations.GetByID(c.Request.Context(), uint(id))
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() || resp.Data == nil {
		listRedirect(c, "reservations", "", "Reservation not found")
		return
	}
	ac.renderForm(c, "reservations", "Edit Reservation", fmt.Sprintf("/admin/reservations/%d", id), reservationFields(*resp.Data))
}

func (ac *AdminController) UpdateReservation(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	dto, err := reservationFromForm(c)
	if err != nil {
		listRedirect(c, "reservations", "", err.Error())
		return
	}
	resp := ac.Reservations.Update(c.Request.Context(), uint(id), dto)
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "reservations", "", resp.Err)
		return
	}
	listRedirect(c, "reservations", "Reservation updated", "")
}

func (ac *AdminController) DeleteReservation(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	resp := ac.Reservations.Delete(c.Request.Context(), uint(id))
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "reservations", "", resp.Err)
		return
	}
	utils.InfoLogger.Printf("reservation %d deleted", id)
	listRedirect(c, "reservations", "Reservation deleted", "")
}

// --- Tables ---

func tableDescriptor() adminview.Descriptor[models.CafeTable] {
	return adminview.Descriptor[models.CafeTable]{
		Columns: []adminview.Column[models.CafeTable]{
			{
				Key: "tableNumber", Label: "Table", Sortable: true,
				Value: func(t models.CafeTable) any { return t.TableNumber },
				Cell:  func(t models.CafeTable) string { return "#" + strconv.Itoa(t.TableNumber) },
			},
			{
				Key: "capacity", Label: "Capacity", Sortable: true,
				Value: func(t models.CafeTable) any { return t.Capacity },
				Cell:  func(t models.CafeTable) string { return strconv.Itoa(t.Capacity) },
			},
		},
		SearchFields: func(t models.CafeTable) []string {
			return []string{strconv.Itoa(t.TableNumber), strconv.Itoa(t.Capacity)}
		},
		ID: func(t models.CafeTable) uint { return t.ID },
	}
}

func (ac *AdminController) ListTables(c *gin.Context) {
	resp := ac.Tables.GetAll(c.Request.Context())
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}

	var rows []models.CafeTable
	if resp.Data != nil {
		rows = *resp.Data
	}
	ac.renderList(c, "tables", "Tables", adminview.Build(rows, viewQuery(c), tableDescriptor()), "Search by table number...")
}

func tableFields(t models.CafeTable) []FormField {
	capacity := t.Capacity
	if capacity == 0 {
		capacity = 2
	}
	return []FormField{
		{Name: "tableNumber", Label: "Table Number", Type: "number", Value: strconv.Itoa(t.TableNumber)},
		{Name: "capacity", Label: "Capacity", Type: "number", Value: strconv.Itoa(capacity)},
	}
}

func tableFromForm(c *gin.Context) (models.CreateCafeTable, error) {
	number, err := strconv.Atoi(c.PostForm("tableNumber"))
	if err != nil {
		return models.CreateCafeTable{}, fmt.Errorf("invalid table number")
	}
	capacity, err := strconv.Atoi(c.PostForm("capacity"))
	if err != nil {
		return models.CreateCafeTable{}, fmt.Errorf("invalid capacity")
	}
	return models.CreateCafeTable{TableNumber: number, Capacity: capacity}, nil
}

func (ac *AdminController) NewTable(c *gin.Context) {
	ac.renderForm(c, "tables", "New Table", "/admin/tables", tableFields(models.CafeTable{}))
}

func (ac *AdminController) CreateTable(c *gin.Context) {
	dto, err := tableFromForm(c)
	if err != nil {
		listRedirect(c, "tables", "", err.Error())
		return
	}
	resp := ac.Tables.Create(c.Request.Context(), dto)
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "tables", "", resp.Err)
		return
	}
	listRedirect(c, "tables", "Table created", "")
}

func (ac *AdminController) EditTable(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	resp := ac.Tables.GetByID(c.Request.Context(), uint(id))
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() || resp.Data == nil {
		listRedirect(c, "tables", "", "Table not found")
		return
	}
	ac.renderForm(c, "tables", "Edit Table", fmt.Sprintf("/admin/tables/%d", id), tableFields(*resp.Data))
}

func (ac *AdminController) UpdateTable(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	dto, err := tableFromForm(c)
	if err != nil {
		listRedirect(c, "tables", "", err.Error())
		return
	}
	resp := ac.Tables.Update(c.Request.Context(), uint(id), dto)
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "tables", "", resp.Err)
		return
	}
	listRedirect(c, "tables", "Table updated", "")
}

func (ac *AdminController) DeleteTable(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	resp := ac.Tables.Delete(c.Request.Context(), uint(id))
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "tables", "", resp.Err)
		return
	}
	utils.InfoLogger.Printf("table %d deleted", id)
	listRedirect(c, "tables", "Table deleted", "")
}

// --- Customers ---

func customerDescriptor() adminview.Descriptor[models.Customer] {
	return adminview.Descriptor[models.Customer]{
		Columns: []adminview.Column[models.Customer]{
			{
				Key: "name", Label: "Name", Sortable: true,
				Value: func(cu models.Customer) any { return cu.Name },
				Cell:  func(cu models.Customer) string { return cu.Name },
			},
			{
				Key: "phoneNumber", Label: "Phone", Sortable: true,
				Value: func(cu models.Customer) any { return cu.PhoneNumber },
				Cell:  func(cu models.Customer) string { return cu.PhoneNumber },
			},
		},
		SearchFields: func(cu models.Customer) []string {
			return []string{cu.Name, cu.PhoneNumber}
		},
		ID: func(cu models.Customer) uint { return cu.ID },
	}
}

func (ac *AdminController) ListCustomers(c *gin.Context) {
	resp := ac.Customers.GetAll(c.Request.Context())
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}

	var rows []models.Customer
	if resp.Data != nil {
		rows = *resp.Data
	}
	ac.renderList(c, "customers", "Customers", adminview.Build(rows, viewQuery(c), customerDescriptor()), "Search by name or phone...")
}

func customerFields(cu models.Customer) []FormField {
	return []FormField{
		{Name: "name", Label: "Name", Type: "text", Value: cu.Name},
		{Name: "phoneNumber", Label: "Phone Number", Type: "tel", Value: cu.PhoneNumber},
	}
}

func (ac *AdminController) NewCustomer(c *gin.Context) {
	ac.renderForm(c, "customers", "New Customer", "/admin/customers", customerFields(models.Customer{}))
}

func (ac *AdminController) CreateCustomer(c *gin.Context) {
	dto := models.CreateCustomer{Name: c.PostForm("name"), PhoneNumber: c.PostForm("phoneNumber")}
	resp := ac.Customers.Create(c.Request.Context(), dto)
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "customers", "", resp.Err)
		return
	}
	listRedirect(c, "customers", "Customer created", "")
}

func (ac *AdminController) EditCustomer(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	resp := ac.Customers.GetByID(c.Request.Context(), uint(id))
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() || resp.Data == nil {
		listRedirect(c, "customers", "", "Customer not found")
		return
	}
	ac.renderForm(c, "customers", "Edit Customer", fmt.Sprintf("/admin/customers/%d", id), customerFields(*resp.Data))
}

func (ac *AdminController) UpdateCustomer(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	dto := models.CreateCustomer{Name: c.PostForm("name"), PhoneNumber: c.PostForm("phoneNumber")}
	resp := ac.Customers.Update(c.Request.Context(), uint(id), dto)
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "customers", "", resp.Err)
		return
	}
	listRedirect(c, "customers", "Customer updated", "")
}

func (ac *AdminController) DeleteCustomer(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	resp := ac.Customers.Delete(c.Request.Context(), uint(id))
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "customers", "", resp.Err)
		return
	}
	utils.InfoLogger.Printf("customer %d deleted", id)
	listRedirect(c, "customers", "Customer deleted", "")
}

// --- Menu items ---

func menuDescriptor() adminview.Descriptor[models.MenuItem] {
	return adminview.Descriptor[models.MenuItem]{
		Columns: []adminview.Column[models.MenuItem]{
			{
				Key: "name", Label: "Name", Sortable: true,
				Value: func(m models.MenuItem) any { return m.Name },
				Cell:  func(m models.MenuItem) string { return m.Name },
			},
			{
				Key: "price", Label: "Price", Sortable: true,
				Value: func(m models.MenuItem) any { return m.Price },
				Cell:  func(m models.MenuItem) string { return utils.FormatPrice(m.Price) },
			},
			{
				Key: "isPopular", Label: "Popular", Sortable: true,
				Value: func(m models.MenuItem) any { return m.IsPopular },
				Cell: func(m models.MenuItem) string {
					if m.IsPopular {
						return "Yes"
					}
					return "No"
				},
			},
			{
				Key: "description", Label: "Description",
				Value: func(m models.MenuItem) any { return m.Description },
				Cell:  func(m models.MenuItem) string { return m.Description },
			},
		},
		SearchFields: func(m models.MenuItem) []string {
			return []string{m.Name, m.Description}
		},
		ID: func(m models.MenuItem) uint { return m.ID },
	}
}

func (ac *AdminController) ListMenuItems(c *gin.Context) {
	resp := ac.Menu.GetAll(c.Request.Context())
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}

	var rows []models.MenuItem
	if resp.Data != nil {
		rows = *resp.Data
	}
	ac.renderList(c, "menu", "Menu Items", adminview.Build(rows, viewQuery(c), menuDescriptor()), "Search by name or description...")
}

func menuFields(m models.MenuItem) []FormField {
	imageURL := ""
	if m.ImageURL != nil {
		imageURL = *m.ImageURL
	}
	return []FormField{
		{Name: "name", Label: "Name", Type: "text", Value: m.Name},
		{Name: "price", Label: "Price", Type: "number", Value: strconv.FormatFloat(m.Price, 'f', -1, 64)},
		{Name: "description", Label: "Description", Type: "text", Value: m.Description},
		{Name: "imageUrl", Label: "Image URL", Type: "text", Value: imageURL},
		{Name: "isPopular", Label: "Popular", Type: "checkbox", Checked: m.IsPopular},
	}
}

func menuFromForm(c *gin.Context) (models.CreateMenuItem, error) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		return models.CreateMenuItem{}, fmt.Errorf("invalid price")
	}
	dto := models.CreateMenuItem{
		Name:        c.PostForm("name"),
		Price:       price,
		Description: c.PostForm("description"),
		IsPopular:   c.PostForm("isPopular") != "",
	}
	if img := c.PostForm("imageUrl"); img != "" {
		dto.ImageURL = &img
	}
	return dto, nil
}

func (ac *AdminController) NewMenuItem(c *gin.Context) {
	ac.renderForm(c, "menu", "New Menu Item", "/admin/menu", menuFields(models.MenuItem{}))
}

func (ac *AdminController) CreateMenuItem(c *gin.Context) {
	dto, err := menuFromForm(c)
	if err != nil {
		listRedirect(c, "menu", "", err.Error())
		return
	}
	resp := ac.Menu.Create(c.Request.Context(), dto)
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "menu", "", resp.Err)
		return
	}
	listRedirect(c, "menu", "Menu item created", "")
}

func (ac *AdminController) EditMenuItem(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	resp := ac.Menu.GetByID(c.Request.Context(), uint(id))
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() || resp.Data == nil {
		listRedirect(c, "menu", "", "Menu item not found")
		return
	}
	ac.renderForm(c, "menu", "Edit Menu Item", fmt.Sprintf("/admin/menu/%d", id), menuFields(*resp.Data))
}

func (ac *AdminController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	dto, err := menuFromForm(c)
	if err != nil {
		listRedirect(c, "menu", "", err.Error())
		return
	}
	resp := ac.Menu.Update(c.Request.Context(), uint(id), dto)
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "menu", "", resp.Err)
		return
	}
	listRedirect(c, "menu", "Menu item updated", "")
}

func (ac *AdminController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	resp := ac.Menu.Delete(c.Request.Context(), uint(id))
	if redirectIfUnauthorized(c, resp.Status) {
		return
	}
	if !resp.OK() {
		listRedirect(c, "menu", "", resp.Err)
		return
	}
	utils.InfoLogger.Printf("menu item %d deleted", id)
	listRedirect(c, "menu", "Menu item deleted", "")
}
