package accounting

import (
	"sort"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateMovements sums movements per account and returns them ordered by account id,
// which is also the order accounts are locked in.
func AggregateMovements(movements []domain.Movement) []domain.Movement {
	byAccount := make(map[string]domain.Movement, len(movements))
	for _, m := range movements {
		agg, ok := byAccount[m.AccountID]
		if !ok {
			agg = domain.Movement{AccountID: m.AccountID, Debit: decimal.Zero, Credit: decimal.Zero}
		}
		agg.Debit = agg.Debit.Add(m.Debit)
		agg.Credit = agg.Credit.Add(m.Credit)
		byAccount[m.AccountID] = agg
	}

	out := make([]domain.Movement, 0, len(byAccount))
	for _, m := range byAccount {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out
}

// SortedAccountIDs returns the distinct account ids of the movements in ascending order.
func SortedAccountIDs(movements []domain.Movement) []string {
	agg := AggregateMovements(movements)
	ids := make([]string, len(agg))
	for i, m := range agg {
		ids[i] = m.AccountID
	}
	return ids
}
