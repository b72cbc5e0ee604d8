package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
)

// CancellationPolicy selects what Cancel does to the ledger and to the entry.
type CancellationPolicy string

const (
	// CancelInPlace flips the entry to CANCELLED and leaves account totals untouched.
	CancelInPlace CancellationPolicy = "IN_PLACE"
	// CancelInPlaceRevertLedger flips to CANCELLED and applies the inverse movements.
	CancelInPlaceRevertLedger CancellationPolicy = "IN_PLACE_REVERT_LEDGER"
	// CancelByReversal posts a mirror entry and marks the original REVERSED.
	CancelByReversal CancellationPolicy = "REVERSAL"
)

// ParseCancellationPolicy parses a configured policy name. Empty input yields CancelInPlace.
func ParseCancellationPolicy(s string) (CancellationPolicy, error) {
	switch CancellationPolicy(strings.ToUpper(strings.TrimSpace(s))) {
	case "", CancelInPlace:
		return CancelInPlace, nil
	case CancelInPlaceRevertLedger:
		return CancelInPlaceRevertLedger, nil
	case CancelByReversal:
		return CancelByReversal, nil
	}
	return "", fmt.Errorf("%w: unknown cancellation policy %q", apperrors.ErrConfiguration, s)
}

// CancellationPolicies maps a source document type to its cancellation policy.
type CancellationPolicies map[DocumentType]CancellationPolicy

// For returns the policy for a document type, CancelInPlace when none is set.
func (p CancellationPolicies) For(t DocumentType) CancellationPolicy {
	if policy, ok := p[t]; ok && policy != "" {
		return policy
	}
	return CancelInPlace
}
