package dictionary

// Entry represents one stored word/definition row. Duplicate words with
// different definitions are legal; every exact match is returned.
type Entry struct {
	ID         int64  `db:"id"`
	Word       string `db:"word"`
	Definition string `db:"definition"`
}
