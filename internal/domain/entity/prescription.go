package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prescription statuses.
const (
	PrescriptionPending   = "pending"
	PrescriptionDispensed = "dispensed"
	PrescriptionCancelled = "cancelled"
)

// Prescription is a set of drugs prescribed to a patient. Dispensing moves it
// to "dispensed" and decrements stock in the same transaction.
type Prescription struct {
	ID           string
	PatientID    string
	PrescriberID string // user who issued it
	Status       string // pending, dispensed, cancelled
	Notes        string
	CreatedAt    time.Time
	DispensedAt  *time.Time
}

// PrescriptionItem is a single drug line on a prescription.
type PrescriptionItem struct {
	PrescriptionID string
	StockItemID    int64
	Quantity       decimal.Decimal
	Dosage         string // free text, e.g. "1x3 after meals"
}
