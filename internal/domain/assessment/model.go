// Package assessment assembles validated, scored assessment records and
// drives their submission to the configured store.
package assessment

import (
	"encoding/json"
	"time"

	"github.com/vineland/vsms-api/internal/domain/archive"
	"github.com/vineland/vsms-api/internal/domain/patient"
	"github.com/vineland/vsms-api/internal/domain/response"
	"github.com/vineland/vsms-api/internal/domain/scoring"
)

// Record is the immutable submission artifact. It is created only by
// Assemble after all validation gates pass and is never mutated after
// that.
type Record struct {
	patient.Info

	AssessmentID   string            `json:"assessment_id"`
	AssessmentDate string            `json:"assessment_date"` // DD/MM/YYYY
	Timestamp      time.Time         `json:"timestamp"`
	Responses      response.Snapshot `json:"responses"`
	Totals         scoring.Totals    `json:"totals"`
}

// ToStored projects the record onto the canonical persisted shape.
func (r *Record) ToStored() archive.StoredRecord {
	raw, _ := json.Marshal(r.Responses)
	return archive.StoredRecord{
		PatientID:      r.PatientID,
		ChildName:      r.ChildName,
		DOB:            r.DOB,
		Age:            r.Age,
		Gender:         r.Gender,
		AssessmentDate: r.AssessmentDate,
		AgeLevel:       r.AgeLevel,
		TherapistName:  r.TherapistName,
		AssessmentID:   r.AssessmentID,
		ResponsesJSON:  string(raw),
		SHGTotal:       r.Totals.ByDomain["SHG"],
		SHETotal:       r.Totals.ByDomain["SHE"],
		SHDTotal:       r.Totals.ByDomain["SHD"],
		SDTotal:        r.Totals.ByDomain["SD"],
		OCCTotal:       r.Totals.ByDomain["OCC"],
		COMTotal:       r.Totals.ByDomain["COM"],
		LOCTotal:       r.Totals.ByDomain["LOC"],
		SOCTotal:       r.Totals.ByDomain["SOC"],
		GrandTotal:     r.Totals.Grand,
		Timestamp:      r.Timestamp,
	}
}
