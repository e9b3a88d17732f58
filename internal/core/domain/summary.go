package domain

// AccountSummary is the single mutable point-in-time balance record for one
// vertical. It is updated via partial merge and never historized; a write
// overwrites the prior value of each provided field.
type AccountSummary struct {
	Vertical       Vertical `json:"vertical"` // Primary Key (one row per vertical)
	Capital        MoneyMap `json:"capital"`
	Cash           MoneyMap `json:"cash"`
	Transfer       MoneyMap `json:"transfer"`
	WorkingCapital MoneyMap `json:"workingCapital"`
	AuditFields
}

// Merge overlays the non-nil fields of patch onto s.
func (s *AccountSummary) Merge(patch AccountSummaryPatch) {
	if patch.Capital != nil {
		s.Capital = patch.Capital.Clone()
	}
	if patch.Cash != nil {
		s.Cash = patch.Cash.Clone()
	}
	if patch.Transfer != nil {
		s.Transfer = patch.Transfer.Clone()
	}
	if patch.WorkingCapital != nil {
		s.WorkingCapital = patch.WorkingCapital.Clone()
	}
}

// AccountSummaryPatch carries a partial update; nil fields are left untouched.
type AccountSummaryPatch struct {
	Capital        MoneyMap
	Cash           MoneyMap
	Transfer       MoneyMap
	WorkingCapital MoneyMap
}
