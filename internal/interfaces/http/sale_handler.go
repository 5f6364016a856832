package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/application/sales"
)

// SaleHandler fluxo da venda em andamento: abrir, montar o carrinho e
// finalizar (protegido).
type SaleHandler struct {
	session *sales.SessionUseCase
	receipt *sales.ReceiptUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(session *sales.SessionUseCase, receipt *sales.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{session: session, receipt: receipt}
}

// Begin godoc
// @Summary      Abrir venda nova
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.CartResponse
// @Router       /api/sales/session [post]
func (h *SaleHandler) Begin(c *fiber.Ctx) error {
	sessionID := h.session.Begin()
	return c.Status(fiber.StatusCreated).JSON(dto.CartResponse{
		SessionID: sessionID,
		Lines:     []dto.CartLineResponse{},
	})
}

// Peek godoc
// @Summary      Consultar a venda em andamento
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/session [get]
func (h *SaleHandler) Peek(c *fiber.Ctx) error {
	sessionID, customerID, lines, total, err := h.session.Peek()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cartResponse(sessionID, customerID, lines, total))
}

// AddItem godoc
// @Summary      Adicionar item ao carrinho
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "Código/barras e quantidade"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/session/items [post]
func (h *SaleHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code é obrigatório"})
	}
	if err := h.session.AddItem(in.Code, in.Quantity); err != nil {
		return fail(c, err)
	}
	return h.Peek(c)
}

// RemoveItem godoc
// @Summary      Remover linha do carrinho
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        index  path  int  true  "Índice da linha (zero-based)"
// @Success      200    {object}  dto.CartResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/sales/session/items/{index} [delete]
func (h *SaleHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice numérico é obrigatório"})
	}
	if err := h.session.RemoveItem(index); err != nil {
		return fail(c, err)
	}
	return h.Peek(c)
}

// SetCustomer godoc
// @Summary      Vincular cliente à venda
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetCustomerRequest  true  "ID do cliente (null desvincula)"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/session/customer [put]
func (h *SaleHandler) SetCustomer(c *fiber.Ctx) error {
	var in dto.SetCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.session.SetCustomer(in.CustomerID); err != nil {
		return fail(c, err)
	}
	return h.Peek(c)
}

// Commit godoc
// @Summary      Finalizar a venda em andamento
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitSaleRequest  true  "Forma de pagamento"
// @Success      201   {object}  dto.CommitSaleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/session/commit [post]
func (h *SaleHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	saleID, total, err := h.session.Commit(c.Context(), GetUserID(c), in.PaymentMethod)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommitSaleResponse{SaleID: saleID, Total: total})
}

// Cancel godoc
// @Summary      Cancelar a venda em andamento
// @Tags         sales
// @Security     Bearer
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/session [delete]
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	if err := h.session.Cancel(); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReceiptPDF godoc
// @Summary      Comprovante da venda em PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID da venda"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) ReceiptPDF(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico é obrigatório"})
	}
	data, err := h.receipt.ReceiptPDF(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="venda-`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}

// CouponXML godoc
// @Summary      Cupom eletrônico da venda (XML)
// @Tags         sales
// @Security     Bearer
// @Produce      application/xml
// @Param        id  path  int  true  "ID da venda"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/coupon [get]
func (h *SaleHandler) CouponXML(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico é obrigatório"})
	}
	data, digest, err := h.receipt.CouponXML(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set("X-Verification-Code", digest)
	return c.Send(data)
}

func cartResponse(sessionID string, customerID *int64, lines []sales.CartLine, total decimal.Decimal) dto.CartResponse {
	out := dto.CartResponse{
		SessionID:  sessionID,
		CustomerID: customerID,
		Lines:      make([]dto.CartLineResponse, 0, len(lines)),
		Total:      total,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.CartLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return out
}
