package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"vintedmanager/internal/domain"
)

var productHeaders = []string{
	"ID", "Type", "Brand", "Size", "Color", "Condition", "Description",
	"Purchase price", "Purchase date", "Estimate", "Sale price", "Sale date",
}

func (a *App) money(v float64) string { return fmt.Sprintf("%.2f%s", v, a.Currency) }

func (a *App) optMoney(v *float64) string {
	if v == nil {
		return "-"
	}
	return a.money(*v)
}

func optDate(s *string) string {
	if s == nil {
		return "-"
	}
	return domain.DisplayDate(*s)
}

func (a *App) productRow(p domain.Product) []string {
	return []string{
		strconv.FormatInt(p.ID, 10), p.Type, p.Brand, p.Size, p.Color, p.Condition, p.Description,
		a.money(p.PurchasePrice), domain.DisplayDate(p.PurchaseDate), a.money(p.EstimatedValue),
		a.optMoney(p.SalePrice), optDate(p.SaleDate),
	}
}

// renderProducts prints a bordered grid, or a short note when empty.
func (a *App) renderProducts(w io.Writer, ps []domain.Product) {
	if len(ps) == 0 {
		fmt.Fprintln(w, "(no products)")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(productHeaders)
	table.SetAutoFormatHeaders(false) // keep "Purchase price", not "PURCHASE PRICE"
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	for _, p := range ps {
		table.Append(a.productRow(p))
	}
	table.Render()
}

// fieldValue shows the current value of f on p, for the edit menu.
func (a *App) fieldValue(p domain.Product, f domain.Field) string {
	return a.productRow(p)[int(f)]
}

func (a *App) renderMetrics(w io.Writer, title string, m domain.Metrics) {
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintf(w, "Revenue:      %s\n", a.money(m.Revenue))
	fmt.Fprintf(w, "Gross profit: %s\n", a.money(m.GrossProfit))
	fmt.Fprintf(w, "Net profit:   %s\n", a.money(m.NetProfit))
}
