package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrescriptionItemRequest one drug line of a new prescription.
type PrescriptionItemRequest struct {
	StockItemID int64           `json:"stock_item_id" validate:"required,min=1"`
	Quantity    decimal.Decimal `json:"quantity"`
	Dosage      string          `json:"dosage"`
}

// CreatePrescriptionRequest input to issue a prescription.
type CreatePrescriptionRequest struct {
	PatientID string                    `json:"patient_id" validate:"required,uuid"`
	Notes     string                    `json:"notes"`
	Items     []PrescriptionItemRequest `json:"items" validate:"required,min=1"`
}

// PrescriptionItemResponse one drug line with quantity and dosage.
type PrescriptionItemResponse struct {
	StockItemID int64           `json:"stock_item_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Dosage      string          `json:"dosage"`
}

// PrescriptionResponse output shape for a prescription.
type PrescriptionResponse struct {
	ID           string                     `json:"id"`
	PatientID    string                     `json:"patient_id"`
	PrescriberID string                     `json:"prescriber_id"`
	Status       string                     `json:"status"`
	Notes        string                     `json:"notes"`
	Items        []PrescriptionItemResponse `json:"items"`
	CreatedAt    time.Time                  `json:"created_at"`
	DispensedAt  *time.Time                 `json:"dispensed_at,omitempty"`
}
