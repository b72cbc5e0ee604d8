package accounting

import (
	"testing"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMovements(t *testing.T) {
	movements := []domain.Movement{
		{AccountID: "c", Credit: decimal.NewFromInt(40)},
		{AccountID: "a", Debit: decimal.NewFromInt(100)},
		{AccountID: "c", Credit: decimal.NewFromInt(20)},
		{AccountID: "b", Credit: decimal.NewFromInt(40)},
	}

	agg := AggregateMovements(movements)
	require.Len(t, agg, 3)
	assert.Equal(t, "a", agg[0].AccountID)
	assert.Equal(t, "b", agg[1].AccountID)
	assert.Equal(t, "c", agg[2].AccountID)
	assert.True(t, agg[2].Credit.Equal(decimal.NewFromInt(60)))
	assert.True(t, agg[2].Debit.IsZero())

	assert.Equal(t, []string{"a", "b", "c"}, SortedAccountIDs(movements))
}
