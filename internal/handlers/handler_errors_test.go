package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: bad", apperrors.ErrValidation), http.StatusBadRequest},
		{"unbalanced", &domain.UnbalancedEntryError{}, http.StatusBadRequest},
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"state transition", &domain.InvalidStateTransitionError{Current: domain.Reversed, Requested: domain.Draft}, http.StatusConflict},
		{"duplicate", apperrors.ErrDuplicate, http.StatusConflict},
		{"no default account", &domain.NoDefaultAccountConfiguredError{Purpose: domain.PurposeBank}, http.StatusUnprocessableEntity},
		{"transient", fmt.Errorf("%w: lock", apperrors.ErrTransient), http.StatusServiceUnavailable},
		{"app error", apperrors.NewAppError(http.StatusTeapot, "tea", nil), http.StatusTeapot},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
