// Package reports computes the read-model projections behind the admin
// reporting dashboard. Every projection is a pure function of the full order
// collection: no caching, no side effects, recomputed per call. All monetary
// sums accumulate the line items' totals exactly (decimal), never the order
// header subtotal.
package reports

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"orderdesk/internal/models"
)

// SortField selects the column a projection is ordered by.
type SortField string

const (
	SortNone        SortField = ""
	SortName        SortField = "name"
	SortQuantity    SortField = "quantity"
	SortTotal       SortField = "total"
	SortPhone       SortField = "phone"
	SortOrderNumber SortField = "order_number"
	SortDate        SortField = "date"
)

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// unknownCustomer is shown when an order carries no customer name.
const unknownCustomer = "Unknown"

// DetailRow is one order header in the detail projection.
type DetailRow struct {
	OrderNumber      string             `json:"order_number"`
	OrderDate        string             `json:"order_date"`
	CustomerName     string             `json:"customer_name"`
	CustomerPhone    string             `json:"customer_phone"`
	CustomerEmail    string             `json:"customer_email"`
	BillingTaxNumber string             `json:"billing_tax_number"`
	Subtotal         float64            `json:"subtotal"`
	Status           models.OrderStatus `json:"status"`
}

// ProductRow is one product's accumulated quantity and revenue across all
// orders.
type ProductRow struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// PhoneProductRow is one (customer phone, product) pair's accumulated
// quantity and revenue.
type PhoneProductRow struct {
	CustomerPhone string  `json:"customer_phone"`
	CustomerName  string  `json:"customer_name"`
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	Total         float64 `json:"total"`
}

// ItemRow is one line item in the flattened detail projection.
type ItemRow struct {
	OrderNumber   string             `json:"order_number"`
	OrderDate     string             `json:"order_date"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	ProductName   string             `json:"product_name"`
	Quantity      int                `json:"quantity"`
	Total         float64            `json:"total"`
	Status        models.OrderStatus `json:"status"`
}

// LookupRow is one order in the public status-lookup view.
type LookupRow struct {
	OrderNumber   string             `json:"order_number"`
	OrderDate     string             `json:"order_date"`
	CustomerPhone string             `json:"customer_phone"`
	Status        models.OrderStatus `json:"status"`
	Subtotal      float64            `json:"subtotal"`
}

// matches reports whether any field contains search, case-insensitively.
// An empty search matches everything.
func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	lower := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lower) {
			return true
		}
	}
	return false
}

// Detail builds the per-order detail projection. The search term matches the
// order number, phone, email, tax number or customer name. Default ordering
// is descending by order number, compared as strings.
func Detail(orders []models.Order, search string, dir Direction) []DetailRow {
	rows := make([]DetailRow, 0, len(orders))
	for _, o := range orders {
		if !matches(search, o.OrderNumber, o.CustomerPhone, o.CustomerEmail, o.BillingTaxNumber, o.CustomerName) {
			continue
		}
		rows = append(rows, DetailRow{
			OrderNumber:      o.OrderNumber,
			OrderDate:        o.OrderDate,
			CustomerName:     o.CustomerName,
			CustomerPhone:    o.CustomerPhone,
			CustomerEmail:    o.CustomerEmail,
			BillingTaxNumber: o.BillingTaxNumber,
			Subtotal:         o.Subtotal,
			Status:           o.Status,
		})
	}
	if dir == "" {
		dir = Descending
	}
	sortRows(rows, func(a, b DetailRow) bool { return a.OrderNumber < b.OrderNumber }, dir)
	return rows
}

type productAcc struct {
	id    int64
	name  string
	qty   int
	total decimal.Decimal
}

// ByProduct groups every line item across every order by product id,
// accumulating quantity and revenue. The product name is carried from the
// first line seen for that id.
func ByProduct(orders []models.Order, search string, field SortField, dir Direction) []ProductRow {
	accs := groupBy(orders,
		func(_ models.Order, it models.OrderItem) int64 { return it.ProductID },
		func(_ models.Order, it models.OrderItem) productAcc {
			return productAcc{id: it.ProductID, name: it.ProductName, qty: it.Quantity, total: decimal.NewFromFloat(it.Total)}
		},
		func(a productAcc, _ models.Order, it models.OrderItem) productAcc {
			a.qty += it.Quantity
			a.total = a.total.Add(decimal.NewFromFloat(it.Total))
			return a
		},
	)

	rows := lo.FilterMap(accs, func(a productAcc, _ int) (ProductRow, bool) {
		if !matches(search, a.name) {
			return ProductRow{}, false
		}
		return ProductRow{ProductID: a.id, ProductName: a.name, Quantity: a.qty, Total: a.total.InexactFloat64()}, true
	})

	switch field {
	case SortName:
		sortRows(rows, func(a, b ProductRow) bool { return a.ProductName < b.ProductName }, dir)
	case SortQuantity:
		sortRows(rows, func(a, b ProductRow) bool { return a.Quantity < b.Quantity }, dir)
	case SortTotal:
		sortRows(rows, func(a, b ProductRow) bool { return a.Total < b.Total }, dir)
	}
	return rows
}

type phoneProductKey struct {
	phone     string
	productID int64
}

type phoneProductAcc struct {
	phone    string
	customer string
	id       int64
	name     string
	qty      int
	total    decimal.Decimal
}

// ByPhoneProduct groups line items by the composite (customer phone, product)
// key. The customer name is carried from the first order seen for that phone,
// falling back to a placeholder when blank.
func ByPhoneProduct(orders []models.Order, search string, field SortField, dir Direction) []PhoneProductRow {
	accs := groupBy(orders,
		func(o models.Order, it models.OrderItem) phoneProductKey {
			return phoneProductKey{phone: o.CustomerPhone, productID: it.ProductID}
		},
		func(o models.Order, it models.OrderItem) phoneProductAcc {
			customer := o.CustomerName
			if customer == "" {
				customer = unknownCustomer
			}
			return phoneProductAcc{
				phone:    o.CustomerPhone,
				customer: customer,
				id:       it.ProductID,
				name:     it.ProductName,
				qty:      it.Quantity,
				total:    decimal.NewFromFloat(it.Total),
			}
		},
		func(a phoneProductAcc, _ models.Order, it models.OrderItem) phoneProductAcc {
			a.qty += it.Quantity
			a.total = a.total.Add(decimal.NewFromFloat(it.Total))
			return a
		},
	)

	rows := lo.FilterMap(accs, func(a phoneProductAcc, _ int) (PhoneProductRow, bool) {
		if !matches(search, a.name) {
			return PhoneProductRow{}, false
		}
		return PhoneProductRow{
			CustomerPhone: a.phone,
			CustomerName:  a.customer,
			ProductID:     a.id,
			ProductName:   a.name,
			Quantity:      a.qty,
			Total:         a.total.InexactFloat64(),
		}, true
	})

	switch field {
	case SortName:
		sortRows(rows, func(a, b PhoneProductRow) bool { return a.ProductName < b.ProductName }, dir)
	case SortQuantity:
		sortRows(rows, func(a, b PhoneProductRow) bool { return a.Quantity < b.Quantity }, dir)
	case SortTotal:
		sortRows(rows, func(a, b PhoneProductRow) bool { return a.Total < b.Total }, dir)
	case SortPhone:
		sortRows(rows, func(a, b PhoneProductRow) bool { return a.CustomerPhone < b.CustomerPhone }, dir)
	}
	return rows
}

// Items flattens every order into one row per line item. The search term
// matches the order number or phone only.
func Items(orders []models.Order, search string, field SortField, dir Direction) []ItemRow {
	var rows []ItemRow
	for _, o := range orders {
		if !matches(search, o.OrderNumber, o.CustomerPhone) {
			continue
		}
		for _, it := range o.Items {
			rows = append(rows, ItemRow{
				OrderNumber:   o.OrderNumber,
				OrderDate:     o.OrderDate,
				CustomerName:  o.CustomerName,
				CustomerPhone: o.CustomerPhone,
				ProductName:   it.ProductName,
				Quantity:      it.Quantity,
				Total:         it.Total,
				Status:        o.Status,
			})
		}
	}

	switch field {
	case SortPhone:
		sortRows(rows, func(a, b ItemRow) bool { return a.CustomerPhone < b.CustomerPhone }, dir)
	case SortOrderNumber:
		sortRows(rows, func(a, b ItemRow) bool { return a.OrderNumber < b.OrderNumber }, dir)
	case SortDate:
		sortByDate(rows, dir)
	}
	return rows
}

// sortByDate orders item rows by parsed order date. Rows whose date cannot be
// parsed sort after every parseable row in both directions.
func sortByDate(rows []ItemRow, dir Direction) {
	sortRows(rows, func(a, b ItemRow) bool {
		ta, aok := parseOrderDate(a.OrderDate)
		tb, bok := parseOrderDate(b.OrderDate)
		if aok && bok {
			return ta.Before(tb)
		}
		// An unparseable date is never "less", so it sinks to the end; the
		// Descending wrapper in sortRows would float it back up, so pin it
		// here by treating parseable-vs-unparseable as a fixed order.
		return aok && !bok
	}, Ascending)
	if dir != Descending {
		return
	}
	// Reverse only the parseable prefix so invalid dates stay last.
	end := len(rows)
	for end > 0 {
		if _, ok := parseOrderDate(rows[end-1].OrderDate); ok {
			break
		}
		end--
	}
	for i, j := 0, end-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
}

func parseOrderDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StatusLookup builds the public order-status view. The search term matches
// the order number or phone.
func StatusLookup(orders []models.Order, search string) []LookupRow {
	rows := make([]LookupRow, 0, len(orders))
	for _, o := range orders {
		if !matches(search, o.OrderNumber, o.CustomerPhone) {
			continue
		}
		rows = append(rows, LookupRow{
			OrderNumber:   o.OrderNumber,
			OrderDate:     o.OrderDate,
			CustomerPhone: o.CustomerPhone,
			Status:        o.Status,
			Subtotal:      o.Subtotal,
		})
	}
	return rows
}
