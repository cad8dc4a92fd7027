package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/reports"
)

var _ reports.OrdersExporter = (*OrdersExporter)(nil)

// Cabeçalho da planilha de pedidos, na ordem das colunas.
var orderHeaders = []any{
	"Número", "Status", "Cliente", "Telefone", "Endereço", "Pagamento",
	"Cupom", "Subtotal", "Taxa de entrega", "Desconto", "Total", "Criado em",
}

// OrdersExporter gera a planilha XLSX de pedidos com excelize.
type OrdersExporter struct{}

// NewOrdersExporter constrói o exportador.
func NewOrdersExporter() *OrdersExporter { return &OrdersExporter{} }

// ExportOrders monta a planilha: uma linha por pedido, cabeçalho em negrito.
func (e *OrdersExporter) ExportOrders(_ context.Context, establishmentName string, orders []dto.OrderResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Pedidos"
	f.SetSheetName("Sheet1", sheet)
	if err := f.SetSheetRow(sheet, "A1", &orderHeaders); err != nil {
		return nil, fmt.Errorf("excel: cabeçalho: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheet, "A1", "L1", style)
	}

	for i, o := range orders {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			o.Number,
			statusLabel(o.Status),
			o.CustomerName,
			o.CustomerPhone,
			o.DeliveryAddress,
			o.PaymentMethod,
			o.CouponCode,
			o.Subtotal.InexactFloat64(),
			o.DeliveryFee.InexactFloat64(),
			o.Discount.InexactFloat64(),
			o.Total.InexactFloat64(),
			o.CreatedAt.Format("02/01/2006 15:04"),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: linha %d: %w", i+2, err)
		}
	}

	// Largura das colunas de texto longo
	_ = f.SetColWidth(sheet, "C", "C", 28)
	_ = f.SetColWidth(sheet, "D", "D", 18)
	_ = f.SetColWidth(sheet, "E", "E", 40)
	_ = f.SetColWidth(sheet, "F", "G", 16)
	_ = f.SetColWidth(sheet, "L", "L", 18)

	_ = f.SetCellValue(sheet, "N1", "Estabelecimento")
	_ = f.SetCellValue(sheet, "N2", establishmentName)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escrever planilha: %w", err)
	}
	return buf.Bytes(), nil
}

// statusLabel traduz o status para a coluna legível da planilha.
func statusLabel(status string) string {
	switch status {
	case "pending":
		return "Pendente"
	case "accepted":
		return "Aceito"
	case "preparing":
		return "Em preparo"
	case "ready":
		return "Pronto"
	case "delivering":
		return "Em entrega"
	case "completed":
		return "Concluído"
	case "cancelled":
		return "Cancelado"
	}
	return status
}
