package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/application/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportExportHandler troca de dados em planilha (protegido, admin).
type ImportExportHandler struct {
	uc *reports.ImportExportUseCase
}

// NewImportExportHandler constrói o handler.
func NewImportExportHandler(uc *reports.ImportExportUseCase) *ImportExportHandler {
	return &ImportExportHandler{uc: uc}
}

// ProductTemplate godoc
// @Summary      Planilha modelo para importação de produtos
// @Tags         import-export
// @Security     Bearer
// @Success      200
// @Router       /api/products/template [get]
func (h *ImportExportHandler) ProductTemplate(c *fiber.Ctx) error {
	data, err := h.uc.ProductTemplate()
	if err != nil {
		return fail(c, err)
	}
	return sendSpreadsheet(c, "modelo-produtos.xlsx", data)
}

// ExportProducts godoc
// @Summary      Exportar o catálogo ativo em .xlsx
// @Tags         import-export
// @Security     Bearer
// @Success      200
// @Router       /api/products/export [get]
func (h *ImportExportHandler) ExportProducts(c *fiber.Ctx) error {
	data, err := h.uc.ExportProducts()
	if err != nil {
		return fail(c, err)
	}
	return sendSpreadsheet(c, "produtos.xlsx", data)
}

// ImportProducts godoc
// @Summary      Importar produtos de planilha .xlsx
// @Tags         import-export
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Planilha de produtos"
// @Success      200   {object}  reports.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *ImportExportHandler) ImportProducts(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "arquivo .xlsx é obrigatório"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível abrir o arquivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}
	out, err := h.uc.ImportProducts(data)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ExportSales godoc
// @Summary      Exportar o histórico de vendas em .xlsx
// @Tags         import-export
// @Security     Bearer
// @Success      200
// @Router       /api/reports/sales/export [get]
func (h *ImportExportHandler) ExportSales(c *fiber.Ctx) error {
	data, err := h.uc.ExportSalesReport()
	if err != nil {
		return fail(c, err)
	}
	return sendSpreadsheet(c, "vendas.xlsx", data)
}

func sendSpreadsheet(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
