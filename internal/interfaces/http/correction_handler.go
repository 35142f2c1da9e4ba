package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/stock"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// CorrectionHandler drives stock reconciliation batches over HTTP.
type CorrectionHandler struct {
	reconcileUC   *stock.ReconcileUseCase
	corrRepo      repository.CorrectionRepository
	atomicDefault bool
}

// NewCorrectionHandler builds the handler. atomicDefault picks the execution
// mode when a request does not say.
func NewCorrectionHandler(reconcileUC *stock.ReconcileUseCase, corrRepo repository.CorrectionRepository, atomicDefault bool) *CorrectionHandler {
	return &CorrectionHandler{reconcileUC: reconcileUC, corrRepo: corrRepo, atomicDefault: atomicDefault}
}

// ReplayKnown godoc
// @Summary      Replay the known PO #74 receipt correction
// @Tags         corrections
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/stock/corrections/replay-known [post]
//
// Registered for every method: the legacy client calls it with whatever verb
// it has at hand, and only the preflight short-circuit cares about the method.
func (h *CorrectionHandler) ReplayKnown(c *fiber.Ctx) error {
	batch := stock.PO74ReceiptFix()
	return h.run(c, batch, h.atomicDefault, "legacy-client")
}

// Apply godoc
// @Summary      Apply a reconciliation batch
// @Tags         corrections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyCorrectionRequest  true  "Correction batch"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  map[string]interface{}
// @Router       /api/stock/corrections [post]
func (h *CorrectionHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyCorrectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	batch := entity.CorrectionBatch{Label: in.Label}
	for _, s := range in.Steps {
		batch.Steps = append(batch.Steps, entity.CorrectionStep{
			Slug:              s.Slug,
			StockItemID:       s.StockItemID,
			Delta:             s.Delta,
			PurchaseOrderID:   s.PurchaseOrderID,
			TargetReceivedQty: s.TargetReceivedQty,
		})
	}
	atomic := h.atomicDefault
	if in.Atomic != nil {
		atomic = *in.Atomic
	}
	return h.run(c, batch, atomic, GetUserID(c))
}

// List godoc
// @Summary      List applied corrections (audit trail)
// @Tags         corrections
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  entity.StockCorrection
// @Router       /api/stock/corrections [get]
func (h *CorrectionHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.corrRepo.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// run executes the batch and renders the legacy response shape: on success
// one "<slug>_new_stock" field per step plus a summary message, on failure
// the raw store message and the list of mutations that committed.
func (h *CorrectionHandler) run(c *fiber.Ctx, batch entity.CorrectionBatch, atomic bool, appliedBy string) error {
	result, err := h.reconcileUC.Apply(c.Context(), batch, appliedBy, atomic)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "label and at least one well-formed step are required"})
		}
		body := fiber.Map{"error": err.Error()}
		if result != nil {
			body["completed_steps"] = completedSteps(result)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}

	body := fiber.Map{
		"success": true,
		"message": "Stock corrected and received quantities updated for " + batch.Label,
	}
	for slug, qty := range result.NewStock {
		body[slug+"_new_stock"] = quantityJSON(qty)
	}
	return c.JSON(body)
}

// completedSteps never renders null: an empty list means nothing committed.
func completedSteps(result *stock.ReconcileResult) []string {
	if result.CompletedSteps == nil {
		return []string{}
	}
	return result.CompletedSteps
}

// quantityJSON renders whole quantities as JSON numbers, the way the legacy
// response did, falling back to the decimal's string form otherwise.
func quantityJSON(qty decimal.Decimal) interface{} {
	if qty.IsInteger() {
		return qty.IntPart()
	}
	return qty.String()
}
