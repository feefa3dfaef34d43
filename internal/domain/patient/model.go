package patient

// Patient carries the two foreign keys the admission engine maintains:
// TreatedBy references an existing doctor at creation time, and AdmittedTo
// is the current room id, with 0 meaning "not admitted".
type Patient struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	History    string `db:"history" json:"history"`
	TreatedBy  int64  `db:"treated_by" json:"treated_by"`
	AdmittedTo int64  `db:"admitted_to" json:"admitted_to"`
}
