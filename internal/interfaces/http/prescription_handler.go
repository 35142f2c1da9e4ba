package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/pharmacy"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
)

// PrescriptionHandler handles HTTP requests for prescriptions (protected).
type PrescriptionHandler struct {
	uc *pharmacy.PharmacyUseCase
}

// NewPrescriptionHandler builds the handler.
func NewPrescriptionHandler(uc *pharmacy.PharmacyUseCase) *PrescriptionHandler {
	return &PrescriptionHandler{uc: uc}
}

// Create godoc
// @Summary      Issue a prescription
// @Tags         prescriptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePrescriptionRequest  true  "Prescription data"
// @Success      201   {object}  dto.PrescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/prescriptions [post]
func (h *PrescriptionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePrescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.CreatePrescription(in, GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "patient_id and at least one line with positive quantity are required"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "patient not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get a prescription with its lines
// @Tags         prescriptions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Prescription id"
// @Success      200  {object}  dto.PrescriptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prescriptions/{id} [get]
func (h *PrescriptionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetPrescription(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prescription not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByPatient godoc
// @Summary      List a patient's prescriptions
// @Tags         prescriptions
// @Security     Bearer
// @Produce      json
// @Param        patient_id  query  string  true   "Patient id"
// @Param        limit       query  int     false  "Limit"   default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {array}  dto.PrescriptionResponse
// @Router       /api/prescriptions [get]
func (h *PrescriptionHandler) ListByPatient(c *fiber.Ctx) error {
	patientID := c.Query("patient_id")
	if patientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "patient_id is required"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListByPatient(patientID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Dispense godoc
// @Summary      Dispense a pending prescription
// @Tags         prescriptions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Prescription id"
// @Success      200  {object}  dto.PrescriptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/prescriptions/{id}/dispense [post]
func (h *PrescriptionHandler) Dispense(c *fiber.Ctx) error {
	out, err := h.uc.Dispense(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prescription not found"})
		case errors.Is(err, domain.ErrAlreadyDispensed):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_DISPENSED", Message: "prescription already dispensed"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "prescription is not pending"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancel a pending prescription
// @Tags         prescriptions
// @Security     Bearer
// @Param        id  path  string  true  "Prescription id"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/prescriptions/{id}/cancel [post]
func (h *PrescriptionHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prescription not found"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "prescription is not pending"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Printout godoc
// @Summary      Download the prescription printout PDF
// @Tags         prescriptions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "Prescription id"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prescriptions/{id}/pdf [get]
func (h *PrescriptionHandler) Printout(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GeneratePrintout(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prescription not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="prescription.pdf"`)
	return c.Send(pdfBytes)
}
