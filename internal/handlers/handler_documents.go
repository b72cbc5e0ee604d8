package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_ledger/internal/core/ports/services"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
	"github.com/SscSPs/backoffice_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler posts business documents to the ledger.
type documentHandler struct {
	documents portssvc.DocumentPostingSvc
}

func registerDocumentRoutes(rg *gin.RouterGroup, documents portssvc.DocumentPostingSvc) {
	h := &documentHandler{documents: documents}

	rg.POST("/invoices/post", h.postInvoice)
	rg.POST("/payments/confirm", h.confirmPayment)
}

// postInvoice godoc
// @Summary Post an invoice
// @Description Builds the journal entry of a sales or purchase invoice and posts it
// @Tags documents
// @Accept json
// @Produce json
// @Param   workplaceID path string true "Workplace ID"
// @Param   invoice body dto.PostInvoiceRequest true "Invoice"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid invoice"
// @Failure 409 {object} map[string]string "Invoice already posted"
// @Failure 422 {object} map[string]string "No account configured for a purpose"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/invoices/post [post]
func (h *documentHandler) postInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param(workplaceParam)

	var req dto.PostInvoiceRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	actor.Channel = "invoice"

	logger = logger.With(slog.String("workplace_id", workplaceID), slog.String("invoice_id", req.InvoiceID))
	entry, err := h.documents.PostInvoice(c.Request.Context(), req.ToDomain(workplaceID), actor)
	if err != nil {
		respondError(c, logger, err, "post invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// confirmPayment godoc
// @Summary Confirm a payment
// @Description Builds the journal entry of a customer or supplier payment and posts it
// @Tags documents
// @Accept json
// @Produce json
// @Param   workplaceID path string true "Workplace ID"
// @Param   payment body dto.ConfirmPaymentRequest true "Payment"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid payment"
// @Failure 409 {object} map[string]string "Payment already confirmed"
// @Failure 422 {object} map[string]string "No account configured for a purpose"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/payments/confirm [post]
func (h *documentHandler) confirmPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param(workplaceParam)

	var req dto.ConfirmPaymentRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	actor.Channel = "payment"

	logger = logger.With(slog.String("workplace_id", workplaceID), slog.String("payment_id", req.PaymentID))
	entry, err := h.documents.ConfirmPayment(c.Request.Context(), req.ToDomain(workplaceID), actor)
	if err != nil {
		respondError(c, logger, err, "confirm payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
