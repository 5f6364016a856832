package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barcaexpert/pdv-api/internal/application/auth"
	"github.com/barcaexpert/pdv-api/internal/application/reports"
	"github.com/barcaexpert/pdv-api/internal/application/sales"
	"github.com/barcaexpert/pdv-api/internal/application/usecase"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/pkg/config"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	CustomerUC     *usecase.CustomerUseCase
	CategoryUC     *usecase.CategoryUseCase
	ReportUC       *usecase.ReportUseCase
	SessionUC      *sales.SessionUseCase
	ReceiptUC      *sales.ReceiptUseCase
	ImportExportUC *reports.ImportExportUseCase
	JWTSecret      string
	PDV            config.PDVConfig
	AutoLoginUser  *entity.User // identidade usada quando PDV_AUTO_LOGIN está habilitado
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authMW := []fiber.Handler{AuthMiddleware(deps.JWTSecret)}
	if deps.AutoLoginUser != nil {
		authMW = []fiber.Handler{AutoLoginMiddleware(deps.AutoLoginUser), AuthMiddleware(deps.JWTSecret)}
	}

	// Auth (login público; cadastro de operador exige admin)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", append(append([]fiber.Handler{}, authMW...), RequireRole(entity.RoleAdmin), authHandler.Register)...)

	// Rotas protegidas (exigem Bearer Token, ou auto-login quando habilitado)
	protected := api.Group("/", authMW...)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	ioHandler := NewImportExportHandler(deps.ImportExportUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/template", RequireRole(entity.RoleAdmin), ioHandler.ProductTemplate)
	products.Get("/export", RequireRole(entity.RoleAdmin), ioHandler.ExportProducts)
	products.Post("/import", RequireRole(entity.RoleAdmin), ioHandler.ImportProducts)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Customers (protegido; todo o módulo fica fora do ar quando
	// PDV_CUSTOMER_MODE está desabilitado)
	if deps.PDV.CustomerMode {
		customers := protected.Group("/customers")
		customerHandler := NewCustomerHandler(deps.CustomerUC)
		customers.Post("/", customerHandler.Create)
		customers.Get("/", customerHandler.List)
		customers.Get("/:id", customerHandler.GetByID)
		customers.Put("/:id", customerHandler.Update)
		customers.Delete("/:id", customerHandler.Delete)
		customers.Get("/:id/credit", customerHandler.CreditStatus)
	}

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Sales: sessão da venda em andamento + consultas (protegido).
	// As rotas fixas de sessão vêm antes de /:id.
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SessionUC, deps.ReceiptUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	salesGroup.Post("/session", saleHandler.Begin)
	salesGroup.Get("/session", saleHandler.Peek)
	salesGroup.Delete("/session", saleHandler.Cancel)
	salesGroup.Post("/session/items", saleHandler.AddItem)
	salesGroup.Delete("/session/items/:index", saleHandler.RemoveItem)
	if deps.PDV.CustomerMode {
		salesGroup.Put("/session/customer", saleHandler.SetCustomer)
	}
	salesGroup.Post("/session/commit", saleHandler.Commit)
	salesGroup.Get("/", reportHandler.SalesHistory)
	salesGroup.Get("/:id", reportHandler.SaleDetail)
	salesGroup.Get("/:id/receipt", saleHandler.ReceiptPDF)
	salesGroup.Get("/:id/coupon", saleHandler.CouponXML)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/open-sales", reportHandler.OpenSales)
	reportsGroup.Get("/stock", reportHandler.Stock)
	reportsGroup.Get("/sales/export", RequireRole(entity.RoleAdmin), ioHandler.ExportSales)
}
