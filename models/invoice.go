package models

import "strings"

// Invoice is a read-only record shown by the payments page lookup.
type Invoice struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer"`
	Amount   float64 `json:"amount"`
	Service  string  `json:"service"`
	Date     string  `json:"date"`
	Status   string  `json:"status"` // Paid, Pending
}

// FindInvoice looks up an invoice by id, ignoring case.
func FindInvoice(list []Invoice, id string) (Invoice, bool) {
	id = strings.ToUpper(strings.TrimSpace(id))
	for _, inv := range list {
		if strings.ToUpper(inv.ID) == id {
			return inv, true
		}
	}
	return Invoice{}, false
}
