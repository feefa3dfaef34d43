package staff

// Doctor is a treating physician. Deleting a doctor cascades through every
// patient they treat; that path lives in the admission engine.
type Doctor struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Spec string `db:"spec" json:"spec"`
}

// Nurse has no relationships to other records.
type Nurse struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Personnel is a support service worker (cleaning, catering, security, ...).
type Personnel struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Type string `db:"type" json:"type"`
}
