package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/application/usecase"
)

// ReportHandler relatórios do balcão (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesHistory godoc
// @Summary      Histórico de vendas recentes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *ReportHandler) SalesHistory(c *fiber.Ctx) error {
	out, err := h.uc.SalesHistory()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SaleDetail godoc
// @Summary      Venda com itens
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *ReportHandler) SaleDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico é obrigatório"})
	}
	out, err := h.uc.SaleDetail(id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
	}
	return c.JSON(out)
}

// OpenSales godoc
// @Summary      Vendas fiado em aberto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OpenSalesReport
// @Router       /api/reports/open-sales [get]
func (h *ReportHandler) OpenSales(c *fiber.Ctx) error {
	out, err := h.uc.OpenSales()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Situação do estoque
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockReport
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.StockReport()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
