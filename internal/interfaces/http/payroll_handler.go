package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/usecase"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
)

// PayrollHandler handles salary reads. Routed behind RequireRole(admin); the
// use case re-checks the payroll access code on every call.
type PayrollHandler struct {
	uc *usecase.PayrollUseCase
}

// NewPayrollHandler builds the handler.
func NewPayrollHandler(uc *usecase.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// ListSalaries godoc
// @Summary      List salary records (admin + access code)
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayrollAccessRequest  true  "Access code and optional period"
// @Success      200   {array}   dto.SalaryRecordResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/payroll/salaries [post]
func (h *PayrollHandler) ListSalaries(c *fiber.Ctx) error {
	var in dto.PayrollAccessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.ListSalaries(in)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "payroll access code rejected"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
