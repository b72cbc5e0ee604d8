package mapping

import (
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/SscSPs/backoffice_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	var parentID *string
	if d.ParentAccountID != "" {
		p := d.ParentAccountID
		parentID = &p
	}
	return models.Account{
		AccountID:       d.AccountID,
		WorkplaceID:     d.WorkplaceID,
		Code:            d.Code,
		Name:            d.Name,
		AccountType:     models.AccountType(d.AccountType),
		ParentAccountID: parentID,
		Description:     d.Description,
		AllowsMovements: d.AllowsMovements,
		HasChildren:     d.HasChildren,
		IsActive:        d.IsActive,
		DebitTotal:      d.DebitTotal,
		CreditTotal:     d.CreditTotal,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	parentID := ""
	if m.ParentAccountID != nil {
		parentID = *m.ParentAccountID
	}
	return domain.Account{
		AccountID:       m.AccountID,
		WorkplaceID:     m.WorkplaceID,
		Code:            m.Code,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		ParentAccountID: parentID,
		Description:     m.Description,
		AllowsMovements: m.AllowsMovements,
		HasChildren:     m.HasChildren,
		IsActive:        m.IsActive,
		DebitTotal:      m.DebitTotal,
		CreditTotal:     m.CreditTotal,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
