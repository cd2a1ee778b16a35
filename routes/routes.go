package routes

import (
	"smart-supermarket/controllers"
	"smart-supermarket/middleware"
	"smart-supermarket/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	userCtrl := controllers.NewUserController()
	productCtrl := controllers.NewProductController()
	customerCtrl := controllers.NewCustomerController()
	supplierCtrl := controllers.NewSupplierController()
	employeeCtrl := controllers.NewEmployeeController()
	saleCtrl := controllers.NewSaleController()
	accountingCtrl := controllers.NewAccountingController()
	analyticsCtrl := controllers.NewAnalyticsController()
	posCtrl := controllers.NewPOSController()
	returnCtrl := controllers.NewReturnController()
	settingsCtrl := controllers.NewSettingsController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.GET("/notifications", settingsCtrl.GetNotifications)
		auth.PATCH("/notifications/:id/read", settingsCtrl.MarkNotificationRead)

		// Catalog reads are open to every authenticated role.
		auth.GET("/products", productCtrl.GetAllProducts)
		auth.GET("/products/low-stock", productCtrl.GetLowStockProducts)
		auth.GET("/products/:id", productCtrl.GetProductByID)
		auth.GET("/payment-methods", settingsCtrl.GetPaymentMethods)
	}

	pos := router.Group("/pos")
	pos.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleCashier), middleware.AuditMiddleware("cart"))
	{
		pos.GET("/cart", posCtrl.GetCart)
		pos.DELETE("/cart", posCtrl.CancelCart)
		pos.POST("/cart/items", posCtrl.AddItem)
		pos.PATCH("/cart/items/:productId", posCtrl.UpdateItem)
		pos.DELETE("/cart/items/:productId", posCtrl.RemoveItem)
		pos.PUT("/cart/customer", posCtrl.SelectCustomer)
		pos.POST("/cart/checkout", posCtrl.InitiateCheckout)
		pos.DELETE("/cart/checkout", posCtrl.CancelPayment)
		pos.POST("/cart/payment", posCtrl.ConfirmPayment)
	}

	inventory := router.Group("/")
	inventory.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleInventoryManager), middleware.AuditMiddleware("inventory"))
	{
		inventory.POST("/products", productCtrl.CreateProduct)
		inventory.PATCH("/products/:id", productCtrl.UpdateProduct)
		inventory.DELETE("/products/:id", productCtrl.DeleteProduct)
		inventory.POST("/products/adjustments", productCtrl.CreateStockAdjustment)
		inventory.GET("/products/adjustments", productCtrl.GetStockAdjustments)

		inventory.GET("/suppliers", supplierCtrl.GetAllSuppliers)
		inventory.GET("/suppliers/:id", supplierCtrl.GetSupplierByID)
		inventory.POST("/suppliers", supplierCtrl.CreateSupplier)
		inventory.PATCH("/suppliers/:id", supplierCtrl.UpdateSupplier)
		inventory.DELETE("/suppliers/:id", supplierCtrl.DeleteSupplier)

		inventory.GET("/purchase-orders", supplierCtrl.GetPurchaseOrders)
		inventory.GET("/purchase-orders/:id", supplierCtrl.GetPurchaseOrderByID)
		inventory.POST("/purchase-orders", supplierCtrl.CreatePurchaseOrder)
		inventory.POST("/purchase-orders/:id/receive", supplierCtrl.ReceivePurchaseOrder)
		inventory.DELETE("/purchase-orders/:id", supplierCtrl.CancelPurchaseOrder)

		// Approving a return restocks products, so it sits with the
		// inventory authority rather than the register.
		inventory.POST("/returns/:id/approve", returnCtrl.ApproveReturn)
		inventory.POST("/returns/:id/reject", returnCtrl.RejectReturn)
	}

	sales := router.Group("/")
	sales.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleCashier, models.RoleAccountant, models.RoleReportViewer))
	{
		sales.GET("/sales", saleCtrl.GetAllSales)
		sales.GET("/sales/:id", saleCtrl.GetSaleByID)
		sales.GET("/receipts", saleCtrl.GetReceipts)
		sales.GET("/receipts/:number", saleCtrl.GetReceiptByNumber)

		sales.GET("/customers", customerCtrl.GetAllCustomers)
		sales.GET("/customers/:id", customerCtrl.GetCustomerByID)

		sales.GET("/returns", returnCtrl.GetReturns)
		sales.GET("/returns/:id", returnCtrl.GetReturnByID)
	}

	returns := router.Group("/")
	returns.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleCashier), middleware.AuditMiddleware("return"))
	{
		returns.POST("/returns", returnCtrl.CreateReturn)
	}

	customers := router.Group("/")
	customers.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleCashier), middleware.AuditMiddleware("customer"))
	{
		customers.POST("/customers", customerCtrl.CreateCustomer)
		customers.PATCH("/customers/:id", customerCtrl.UpdateCustomer)
		customers.DELETE("/customers/:id", customerCtrl.DeleteCustomer)
	}

	accounting := router.Group("/accounting")
	accounting.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAccountant), middleware.AuditMiddleware("accounting"))
	{
		accounting.GET("/accounts", accountingCtrl.GetAccounts)
		accounting.POST("/accounts", accountingCtrl.CreateAccount)
		accounting.GET("/journal-entries", accountingCtrl.GetJournalEntries)
		accounting.GET("/journal-entries/:id", accountingCtrl.GetJournalEntryByID)
		accounting.POST("/journal-entries", accountingCtrl.CreateJournalEntry)
	}

	analytics := router.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAccountant, models.RoleReportViewer))
	{
		analytics.GET("/dashboard", analyticsCtrl.GetDashboard)
		analytics.GET("/alerts", analyticsCtrl.GetAlerts)
		analytics.GET("/forecasts/sales", analyticsCtrl.GetSalesForecasts)
		analytics.GET("/predictions/profit", analyticsCtrl.GetProfitPredictions)
		analytics.GET("/predictions/cash-flow", analyticsCtrl.GetCashFlowPredictions)
		analytics.GET("/summaries/daily", analyticsCtrl.GetDailySummaries)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.ManagerMiddleware(), middleware.AuditMiddleware("admin"))
	{
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id", userCtrl.GetUserByID)
		admin.POST("/users", userCtrl.CreateUser)
		admin.PATCH("/users/:id", userCtrl.UpdateUser)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.GET("/employees", employeeCtrl.GetAllEmployees)
		admin.GET("/employees/:id", employeeCtrl.GetEmployeeByID)
		admin.POST("/employees", employeeCtrl.CreateEmployee)
		admin.PATCH("/employees/:id", employeeCtrl.UpdateEmployee)
		admin.DELETE("/employees/:id", employeeCtrl.DeleteEmployee)

		admin.GET("/shifts", employeeCtrl.GetShifts)
		admin.POST("/shifts", employeeCtrl.CreateShift)
		admin.POST("/shifts/:id/clock-in", employeeCtrl.ClockIn)
		admin.POST("/shifts/:id/clock-out", employeeCtrl.ClockOut)

		admin.POST("/payment-methods", settingsCtrl.CreatePaymentMethod)
		admin.PATCH("/payment-methods/:id", settingsCtrl.SetPaymentMethodActive)
		admin.GET("/tax-rates", settingsCtrl.GetTaxRates)
		admin.POST("/tax-rates", settingsCtrl.CreateTaxRate)

		admin.POST("/notifications", settingsCtrl.CreateNotification)
		admin.GET("/audit-logs", settingsCtrl.GetAuditLogs)
		admin.POST("/alerts", analyticsCtrl.CreateAlert)
		admin.PATCH("/alerts/:id/resolve", analyticsCtrl.ResolveAlert)
	}
}
