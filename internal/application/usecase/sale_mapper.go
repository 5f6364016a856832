package usecase

import (
	"time"

	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
)

// ToSaleResponse mapeia a venda (e itens, quando carregados) para a resposta.
func ToSaleResponse(s *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		OperatorID:    s.OperatorID,
		OperatorName:  s.OperatorName,
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		Status:        string(s.Status),
		SoldAt:        s.SoldAt.Format(time.RFC3339),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return resp
}
