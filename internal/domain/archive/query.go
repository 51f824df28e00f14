package archive

import "strings"

// Mode selects which field the history search matches on.
type Mode string

const (
	ByPatientID Mode = "byPatientId"
	ByName      Mode = "byName"
)

// Search filters records whose selected field contains term as a
// case-insensitive substring. An empty term returns nothing rather than
// the whole archive, and input order is preserved.
func Search(records []StoredRecord, mode Mode, term string) []StoredRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var out []StoredRecord
	for _, r := range records {
		var field string
		switch mode {
		case ByPatientID:
			field = r.PatientID
		case ByName:
			field = r.ChildName
		default:
			return nil
		}
		if strings.Contains(strings.ToLower(field), term) {
			out = append(out, r)
		}
	}
	return out
}
