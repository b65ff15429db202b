// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/shopspring/decimal"
)

// record is the sortable form shared by both tables. Products leave
// quantity and subtotal zero.
type record struct {
	id       int
	name     string
	unit     string
	quantity decimal.Decimal
	price    decimal.Decimal
	subtotal decimal.Decimal
}

func compareBy(column Column) func(a, b record) int {
	switch column {
	case ColumnName:
		return func(a, b record) int { return strings.Compare(a.name, b.name) }
	case ColumnUnit:
		return func(a, b record) int { return strings.Compare(a.unit, b.unit) }
	case ColumnQuantity:
		return func(a, b record) int { return a.quantity.Cmp(b.quantity) }
	case ColumnPrice:
		return func(a, b record) int { return a.price.Cmp(b.price) }
	case ColumnSubtotal:
		return func(a, b record) int { return a.subtotal.Cmp(b.subtotal) }
	default:
		return func(a, b record) int { return cmp.Compare(a.id, b.id) }
	}
}

func sortRecords(records []record, sortBy Column, ascending bool) {
	compare := compareBy(sortBy)
	slices.SortStableFunc(records, func(a, b record) int {
		if ascending {
			return compare(a, b)
		}
		return compare(b, a)
	})
}

// SortProducts orders rows by the raw value of sortBy. Ties keep their
// input order.
func SortProducts(rows []ProductRow, sortBy Column, ascending bool) error {
	if err := checkSortColumn(ProductColumns, sortBy); err != nil {
		return err
	}
	records := productRecords(rows)
	sortRecords(records, sortBy, ascending)
	for i, r := range records {
		rows[i] = ProductRow{ID: r.id, Name: r.name, Unit: r.unit, Price: r.price}
	}
	return nil
}

// SortCart orders rows by the raw value of sortBy. Ties keep their
// input order.
func SortCart(rows []CartRow, sortBy Column, ascending bool) error {
	if err := checkSortColumn(CartColumns, sortBy); err != nil {
		return err
	}
	records := cartRecords(rows)
	sortRecords(records, sortBy, ascending)
	for i, r := range records {
		rows[i] = CartRow{ID: r.id, Name: r.name, Unit: r.unit, Quantity: r.quantity, Price: r.price}
	}
	return nil
}

// Products writes the catalog table to w.
func Products(w io.Writer, rows []ProductRow, sortBy Column, ascending bool) error {
	if err := checkSortColumn(ProductColumns, sortBy); err != nil {
		return err
	}
	records := productRecords(rows)
	sortRecords(records, sortBy, ascending)
	return writeTable(w, ProductColumns, records, nil)
}

// Cart writes the cart table, with subtotals and a closing total row,
// to w.
func Cart(w io.Writer, rows []CartRow, sortBy Column, ascending bool) error {
	if err := checkSortColumn(CartColumns, sortBy); err != nil {
		return err
	}
	records := cartRecords(rows)
	sortRecords(records, sortBy, ascending)
	total := Total(rows)
	return writeTable(w, CartColumns, records, &total)
}

func productRecords(rows []ProductRow) []record {
	records := make([]record, len(rows))
	for i, row := range rows {
		records[i] = record{id: row.ID, name: row.Name, unit: row.Unit, price: row.Price}
	}
	return records
}

func cartRecords(rows []CartRow) []record {
	records := make([]record, len(rows))
	for i, row := range rows {
		records[i] = record{
			id:       row.ID,
			name:     row.Name,
			unit:     row.Unit,
			quantity: row.Quantity,
			price:    row.Price,
			subtotal: row.Subtotal(),
		}
	}
	return records
}

func cellText(r record, column Column) string {
	switch column {
	case ColumnID:
		return strconv.Itoa(r.id)
	case ColumnName:
		return r.name
	case ColumnUnit:
		return r.unit
	case ColumnQuantity:
		return r.quantity.String()
	case ColumnPrice:
		return Currency(r.price)
	case ColumnSubtotal:
		return Currency(r.subtotal)
	}
	return ""
}

// writeTable lays out records under columns. When total is non-nil a
// rule and a totals row follow the data rows.
func writeTable(w io.Writer, columns []Column, records []record, total *decimal.Decimal) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "Empty.")
		return err
	}

	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = ansi.StringWidth(string(column))
	}
	cells := make([][]string, len(records))
	for rowIndex, r := range records {
		cells[rowIndex] = make([]string, len(columns))
		for i, column := range columns {
			text := cellText(r, column)
			cells[rowIndex][i] = text
			widths[i] = max(widths[i], ansi.StringWidth(text))
		}
	}

	var totalCells []string
	if total != nil {
		// Only the amount widens its column; the "Total" label may
		// overhang the Name column.
		totalCells = make([]string, len(columns))
		for i, column := range columns {
			switch column {
			case ColumnName:
				totalCells[i] = "Total"
			case ColumnSubtotal:
				totalCells[i] = Currency(*total)
				widths[i] = max(widths[i], ansi.StringWidth(totalCells[i]))
			}
		}
	}

	headerCells := ColumnNames(columns)
	header := joinCells(headerCells, widths, " |")

	lines := make([]string, 0, len(records)+4)
	widest := ansi.StringWidth(header)
	for _, row := range cells {
		line := joinCells(row, widths, " |")
		lines = append(lines, line)
		widest = max(widest, ansi.StringWidth(line))
	}
	if totalCells != nil {
		dataWidth := 0
		for _, line := range lines {
			dataWidth = max(dataWidth, ansi.StringWidth(line))
		}
		totalLine := joinCells(totalCells, widths, "  ")
		lines = append(lines, strings.Repeat("-", dataWidth), totalLine)
		widest = max(widest, ansi.StringWidth(totalLine))
	}

	var output strings.Builder
	output.WriteString(header)
	output.WriteByte('\n')
	output.WriteString(strings.Repeat("-", widest))
	output.WriteByte('\n')
	for _, line := range lines {
		output.WriteString(line)
		output.WriteByte('\n')
	}
	_, err := io.WriteString(w, output.String())
	return err
}

// joinCells pads each cell to its column width, prefixes a space and
// joins the cells with separator.
func joinCells(cells []string, widths []int, separator string) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padding := max(widths[i]-ansi.StringWidth(cell), 0)
		padded[i] = " " + cell + strings.Repeat(" ", padding)
	}
	return strings.Join(padded, separator)
}

// Currency formats amount as dollars with thousands separators and
// exactly two decimal places: $1,234.50. Ties round half to even, so
// $0.125 prints as $0.12.
func Currency(amount decimal.Decimal) string {
	fixed := amount.StringFixedBank(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, fraction, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}
	return sign + "$" + grouped.String() + "." + fraction
}
