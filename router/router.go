package router

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/verdantea/teahouse-web/apiclient"
	"github.com/verdantea/teahouse-web/controllers"
	"github.com/verdantea/teahouse-web/middlewares"
	"github.com/verdantea/teahouse-web/services"
	"github.com/verdantea/teahouse-web/session"
	"github.com/verdantea/teahouse-web/templates"
	"github.com/verdantea/teahouse-web/utils"
)

func SetupRouter(store *session.Store, client *apiclient.Client) *gin.Engine {
	r := gin.Default()

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"formatPrice": utils.FormatPrice,
	}).ParseFS(templates.FS, "*.tmpl"))
	r.SetHTMLTemplate(tmpl)

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())
	r.Use(middlewares.SessionLoader(store))

	menuSvc := services.NewMenuService(client)
	tableSvc := services.NewTableService(client)
	customerSvc := services.NewCustomerService(client)
	reservationSvc := services.NewReservationService(client)
	authSvc := services.NewAuthService(client)

	pageCtrl := controllers.NewPageController(menuSvc)
	authCtrl := controllers.NewAuthController(authSvc, store)
	wizardCtrl := controllers.NewWizardController(tableSvc, customerSvc, reservationSvc)
	adminCtrl := controllers.NewAdminController(menuSvc, tableSvc, customerSvc, reservationSvc)

	r.GET("/", pageCtrl.Home)
	r.GET("/menu", pageCtrl.MenuPage)
	r.GET("/healthz", pageCtrl.Health)

	r.GET("/auth", authCtrl.ShowLogin)
	r.POST("/auth/login", middlewares.NewStrictRateLimiter(), authCtrl.Login)
	r.POST("/auth/logout", authCtrl.Logout)

	reserve := r.Group("/reserve")
	{
		reserve.GET("", wizardCtrl.Show)
		reserve.POST("/date", wizardCtrl.SubmitDate)
		reserve.POST("/guests", wizardCtrl.SubmitGuests)
		reserve.POST("/table", wizardCtrl.SubmitTable)
		reserve.POST("/customer", wizardCtrl.SubmitCustomer)
		reserve.POST("/confirm", wizardCtrl.Confirm)
		reserve.POST("/back", wizardCtrl.Back)
		reserve.POST("/restart", wizardCtrl.Restart)
	}

	admin := r.Group("/admin", middlewares.RequireAuth())
	{
		admin.GET("", adminCtrl.Dashboard)

		admin.GET("/reservations", adminCtrl.ListReservations)
		admin.GET("/reservations/new", adminCtrl.NewReservation)
		admin.POST("/reservations", adminCtrl.CreateReservation)
		admin.GET("/reservations/:id/edit", adminCtrl.EditReservation)
		admin.POST("/reservations/:id", adminCtrl.UpdateReservation)
		admin.POST("/reservations/:id/delete", adminCtrl.DeleteReservation)

		admin.GET("/tables", adminCtrl.ListTables)
		admin.GET("/tables/new", adminCtrl.NewTable)
		admin.POST("/tables", adminCtrl.CreateTable)
		admin.GET("/tables/:id/edit", adminCtrl.EditTable)
		admin.POST("/tables/:id", adminCtrl.UpdateTable)
		admin.POST("/tables/:id/delete", adminCtrl.DeleteTable)

		admin.GET("/customers", adminCtrl.ListCustomers)
		admin.GET("/customers/new", adminCtrl.NewCustomer)
		admin.POST("/customers", adminCtrl.CreateCustomer)
		admin.GET("/customers/:id/edit", adminCtrl.EditCustomer)
		admin.POST("/customers/:id", adminCtrl.UpdateCustomer)
		admin.POST("/customers/:id/delete", adminCtrl.DeleteCustomer)

		admin.GET("/menu", adminCtrl.ListMenuItems)
		admin.GET("/menu/new", adminCtrl.NewMenuItem)
		admin.POST("/menu", adminCtrl.CreateMenuItem)
		admin.GET("/menu/:id/edit", adminCtrl.EditMenuItem)
		admin.POST("/menu/:id", adminCtrl.UpdateMenuItem)
		admin.POST("/menu/:id/delete", adminCtrl.DeleteMenuItem)
	}

	r.NoRoute(pageCtrl.NotFound)

	return r
}
