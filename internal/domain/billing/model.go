package billing

// Treatment is a billed line item. BilledTo references the patient that
// existed when the bill was written; records are kept after the patient is
// deleted so the billing history stays auditable.
type Treatment struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Cost     float64 `db:"cost" json:"cost"`
	BilledTo int64   `db:"billed_to" json:"billed_to"`
}
