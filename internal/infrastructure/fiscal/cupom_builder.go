// Package fiscal gera o cupom eletrônico simplificado da venda: um XML com
// cabeçalho, itens e totais, mais um código de verificação SHA-256 calculado
// sobre os bytes canônicos (C14N) do documento.
package fiscal

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/barcaexpert/pdv-api/internal/domain/entity"
)

// CupomBuilder implementa sales.CouponBuilder usando etree + c14n.
type CupomBuilder struct {
	storeName string
}

// NewCupomBuilder constrói o gerador com o nome da banca.
func NewCupomBuilder(storeName string) *CupomBuilder {
	if storeName == "" {
		storeName = "Banca de Jornal"
	}
	return &CupomBuilder{storeName: storeName}
}

// Build monta o XML do cupom e devolve os bytes junto com o digest hex.
// O digest é estável: para a mesma venda o mesmo código é sempre gerado.
func (b *CupomBuilder) Build(
	sale *entity.Sale,
	items []*entity.SaleItem,
	products map[int64]*entity.Product,
) ([]byte, string, error) {
	if sale == nil {
		return nil, "", fmt.Errorf("fiscal: venda ausente")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	cupom := doc.CreateElement("CupomVenda")
	cupom.CreateAttr("versao", "1.0")

	emit := cupom.CreateElement("Emitente")
	emit.CreateElement("Nome").SetText(b.storeName)

	header := cupom.CreateElement("Venda")
	header.CreateElement("Numero").SetText(strconv.FormatInt(sale.ID, 10))
	header.CreateElement("Data").SetText(sale.SoldAt.UTC().Format("2006-01-02T15:04:05Z"))
	header.CreateElement("FormaPagamento").SetText(string(sale.PaymentMethod))
	header.CreateElement("Situacao").SetText(string(sale.Status))
	if sale.CustomerName != "" {
		header.CreateElement("Cliente").SetText(sale.CustomerName)
	}

	itens := cupom.CreateElement("Itens")
	for _, it := range items {
		item := itens.CreateElement("Item")
		item.CreateAttr("numero", strconv.FormatInt(it.ID, 10))
		item.CreateElement("Produto").SetText(it.ProductName)
		item.CreateElement("Quantidade").SetText(strconv.Itoa(it.Quantity))
		item.CreateElement("ValorUnitario").SetText(it.UnitPrice.StringFixed(2))
		item.CreateElement("ValorTotal").SetText(it.Subtotal.StringFixed(2))

		// Dados tributários quando o produto ainda existe no catálogo.
		if p, ok := products[it.ProductID]; ok && p != nil {
			if p.TaxCode != "" {
				item.CreateElement("NCM").SetText(p.TaxCode)
			}
			if p.TaxSubCode != "" {
				item.CreateElement("CEST").SetText(p.TaxSubCode)
			}
			item.CreateElement("Unidade").SetText(p.Unit)
		}
	}

	totais := cupom.CreateElement("Totais")
	totais.CreateElement("QuantidadeItens").SetText(strconv.Itoa(len(items)))
	totais.CreateElement("ValorTotal").SetText(sale.Total.StringFixed(2))

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("fiscal: serializar cupom: %w", err)
	}

	digest, err := digestCanonical(raw)
	if err != nil {
		return nil, "", err
	}

	cupom.CreateElement("CodigoVerificacao").SetText(digest)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("fiscal: serializar cupom: %w", err)
	}
	return out, digest, nil
}

// digestCanonical calcula SHA-256 hex sobre os bytes canônicos do XML.
func digestCanonical(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("fiscal: canonicalizar cupom: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
