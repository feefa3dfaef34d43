package room

// Room is a ward room. Occupied and OccupiedBy must always agree:
// Occupied is true exactly when OccupiedBy is a nonzero patient id.
// Zero is the sentinel for "empty", never a valid patient id.
type Room struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Size       int    `db:"size" json:"size"`
	Occupied   bool   `db:"occupied" json:"occupied"`
	OccupiedBy int64  `db:"occupied_by" json:"occupied_by"`
}
