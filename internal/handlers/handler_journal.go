package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_ledger/internal/core/ports/services"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
	"github.com/SscSPs/backoffice_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// registerJournalRoutes registers journal entry routes under a workplace group.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PUT("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)

		entries.POST("/:entryID/approve", h.approveEntry)
		entries.POST("/:entryID/post", h.postEntry)
		entries.POST("/:entryID/cancel", h.cancelEntry)
		entries.POST("/:entryID/reverse", h.reverseEntry)
		entries.POST("/:entryID/reset-to-draft", h.resetEntryToDraft)
		entries.POST("/:entryID/reconcile", h.reconcileEntry)
	}
}

type transitionFunc func(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error)

// runTransition executes one lifecycle call for the entry named in the path and writes
// the resulting entry.
func (h *journalHandler) runTransition(c *gin.Context, action string, status int, fn transitionFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param(workplaceParam)
	entryID := c.Param("entryID")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("workplace_id", workplaceID), slog.String("entry_id", entryID))
	logger.Info("Received request to " + action)

	entry, err := fn(c.Request.Context(), workplaceID, entryID, actor)
	if err != nil {
		respondError(c, logger, err, action)
		return
	}

	logger.Info("Journal entry transition completed", slog.String("action", action), slog.String("status", string(entry.Status)))
	c.JSON(status, dto.ToJournalEntryResponse(entry))
}

// createEntry godoc
// @Summary Create a draft journal entry
// @Description Saves a new entry in DRAFT. Lines are checked for shape only; balance is enforced when posting.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   entry body dto.CreateJournalEntryRequest true "Entry header and lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create journal entry"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param(workplaceParam)

	var req dto.CreateJournalEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("workplace_id", workplaceID))
	entry, err := h.journalService.CreateDraft(c.Request.Context(), workplaceID, req, actor)
	if err != nil {
		respondError(c, logger, err, "create journal entry")
		return
	}

	logger.Info("Draft journal entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags entries
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param(workplaceParam)
	entryID := c.Param("entryID")

	entry, err := h.journalService.GetEntry(c.Request.Context(), workplaceID, entryID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first with optional status, journal and date filters
// @Tags entries
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Token of the next page"
// @Param   status query string false "Status filter"
// @Param   journalCode query string false "Journal code filter"
// @Param   from query string false "Entry date from (YYYY-MM-DD)"
// @Param   to query string false "Entry date to (YYYY-MM-DD)"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list journal entries"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param(workplaceParam)

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), workplaceID, params)
	if err != nil {
		respondError(c, logger, err, "list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateEntry godoc
// @Summary Update a draft journal entry
// @Description Replaces header and lines of a DRAFT entry
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.UpdateJournalEntryRequest true "Entry header and lines"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft or was modified concurrently"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries/{entryID} [put]
func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateJournalEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	h.runTransition(c, "update journal entry", http.StatusOK, func(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
		return h.journalService.UpdateDraft(ctx, workplaceID, entryID, req, actor)
	})
}

// deleteEntry godoc
// @Summary Delete a draft journal entry
// @Tags entries
// @Param   workplaceID path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries/{entryID} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param(workplaceParam)
	entryID := c.Param("entryID")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("workplace_id", workplaceID), slog.String("entry_id", entryID))
	if err := h.journalService.DeleteDraft(c.Request.Context(), workplaceID, entryID, actor); err != nil {
		respondError(c, logger, err, "delete journal entry")
		return
	}

	logger.Info("Draft journal entry deleted")
	c.Status(http.StatusNoContent)
}

// approveEntry godoc
// @Summary Approve a draft journal entry
// @Description Validates the entry and moves it to APPROVED. Account totals are not touched.
// @Tags entries
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Entry is unbalanced or has invalid lines"
// @Failure 409 {object} map[string]string "Invalid state transition"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries/{entryID}/approve [post]
func (h *journalHandler) approveEntry(c *gin.Context) {
	h.runTransition(c, "approve journal entry", http.StatusOK, h.journalService.Approve)
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Validates the entry, applies its lines to account totals and assigns its number, atomically
// @Tags entries
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Entry is unbalanced or has invalid lines"
// @Failure 409 {object} map[string]string "Invalid state transition"
// @Failure 503 {object} map[string]string "Transient failure, retry"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries/{entryID}/post [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	h.runTransition(c, "post journal entry", http.StatusOK, h.journalService.Post)
}

// cancelEntry godoc
// @Summary Cancel a posted journal entry
// @Description Cancels according to the policy configured for the entry's document type
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Param   cancel body dto.CancelEntryRequest true "Cancellation reason"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Missing reason"
// @Failure 409 {object} map[string]string "Invalid state transition"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries/{entryID}/cancel [post]
func (h *journalHandler) cancelEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CancelEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	h.runTransition(c, "cancel journal entry", http.StatusOK, func(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
		return h.journalService.Cancel(ctx, workplaceID, entryID, req.Reason, actor)
	})
}

// reverseEntry godoc
// @Summary Reverse a posted journal entry
// @Description Posts a mirror entry with debits and credits swapped and links both entries
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Param   reversal body dto.ReverseEntryRequest true "Reversal reason and date"
// @Success 201 {object} dto.JournalEntryResponse "The reversal entry"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Entry already reversed or not posted"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries/{entryID}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReverseEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	h.runTransition(c, "reverse journal entry", http.StatusCreated, func(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
		return h.journalService.Reverse(ctx, workplaceID, entryID, req, actor)
	})
}

// resetEntryToDraft godoc
// @Summary Reset a journal entry to draft
// @Description Returns an APPROVED, POSTED or CANCELLED entry to DRAFT, undoing its ledger effect
// @Tags entries
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 409 {object} map[string]string "Entry is reconciled, reversed or in a terminal state"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries/{entryID}/reset-to-draft [post]
func (h *journalHandler) resetEntryToDraft(c *gin.Context) {
	h.runTransition(c, "reset journal entry to draft", http.StatusOK, h.journalService.ResetToDraft)
}

// reconcileEntry godoc
// @Summary Mark a posted journal entry as reconciled
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Param   reconciliation body dto.MarkReconciledRequest true "Reconciliation reference"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 409 {object} map[string]string "Entry not posted or reconciled elsewhere"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/entries/{entryID}/reconcile [post]
func (h *journalHandler) reconcileEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MarkReconciledRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	h.runTransition(c, "reconcile journal entry", http.StatusOK, func(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
		return h.journalService.MarkReconciled(ctx, workplaceID, entryID, req.ReconciliationID, actor)
	})
}
