// Package patient holds patient demographics and the sequential patient
// identifier allocator.
package patient

// Type distinguishes a patient being registered for the first time from
// one already carrying an id.
type Type string

const (
	TypeNew      Type = "new"
	TypeExisting Type = "existing"
)

// Info is the demographic block the clinician fills in before scoring.
type Info struct {
	ChildName     string `json:"child_name"`
	DOB           string `json:"dob"`
	Age           string `json:"age"`
	Gender        string `json:"gender"`
	AgeLevel      string `json:"age_level"`
	PatientType   Type   `json:"patient_type"`
	PatientID     string `json:"patient_id"`
	TherapistName string `json:"therapist_name"`
}

// ClearIdentity blanks the identity fields after a successful submission
// so the next case can be entered immediately. Patient type and the
// selected age level survive the reset.
func (i *Info) ClearIdentity() {
	i.ChildName = ""
	i.DOB = ""
	i.Age = ""
	i.Gender = ""
	i.PatientID = ""
}
