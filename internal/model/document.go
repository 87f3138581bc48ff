// Package model defines the core domain models used throughout the application.
package model

import (
	"strings"
	"time"
)

// DocumentType indicates the kind of financial document being compared.
type DocumentType string

// Document type constants.
const (
	TypeInvoice       DocumentType = "INVOICE"
	TypePurchaseOrder DocumentType = "PURCHASE_ORDER"
	TypeClaim         DocumentType = "CLAIM"
	TypeAgreement     DocumentType = "AGREEMENT"
)

// LineItem is a single product line on a document.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Document represents an invoice, purchase order, deduction claim or
// trade-spend agreement. Documents are supplied by the caller and are
// never mutated by the engine.
type Document struct {
	IssueDate      time.Time    `json:"issue_date"`
	ID             string       `json:"id"`
	Type           DocumentType `json:"type"`
	CounterpartyID string       `json:"counterparty_id"`
	Lines          []LineItem   `json:"lines"`
	TotalAmount    float64      `json:"total_amount"`
}

// ProductIDs returns the distinct, normalized product identifiers across
// all lines, in first-seen order.
func (d *Document) ProductIDs() []string {
	seen := make(map[string]bool, len(d.Lines))
	ids := make([]string, 0, len(d.Lines))
	for _, line := range d.Lines {
		id := NormalizeID(line.ProductID)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// TotalQuantity returns the sum of quantities across all lines.
func (d *Document) TotalQuantity() float64 {
	var total float64
	for _, line := range d.Lines {
		total += line.Quantity
	}
	return total
}

// NormalizeID canonicalizes an opaque identifier for comparison.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
