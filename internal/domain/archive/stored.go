// Package archive works with previously persisted assessment records:
// the canonical stored shape, the history search, and workbook export.
package archive

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/vineland/vsms-api/internal/domain/catalog"
	"github.com/vineland/vsms-api/internal/domain/response"
)

// ErrMalformedRecord marks a stored record whose responses column failed
// to parse. Callers degrade to an empty snapshot instead of aborting.
var ErrMalformedRecord = errors.New("malformed stored record")

// StoredRecord is the persisted projection of an assessment record, the
// single canonical shape every store backend normalizes into.
type StoredRecord struct {
	PatientID      string    `json:"patientId"`
	ChildName      string    `json:"childName"`
	DOB            string    `json:"dob"`
	Age            string    `json:"age"`
	Gender         string    `json:"gender"`
	AssessmentDate string    `json:"assessmentDate"`
	AgeLevel       string    `json:"ageLevel"`
	TherapistName  string    `json:"therapistName"`
	AssessmentID   string    `json:"assessmentId"`
	ResponsesJSON  string    `json:"responsesJSON"`
	SHGTotal       float64   `json:"SHG_total"`
	SHETotal       float64   `json:"SHE_total"`
	SHDTotal       float64   `json:"SHD_total"`
	SDTotal        float64   `json:"SD_total"`
	OCCTotal       float64   `json:"OCC_total"`
	COMTotal       float64   `json:"COM_total"`
	LOCTotal       float64   `json:"LOC_total"`
	SOCTotal       float64   `json:"SOC_total"`
	GrandTotal     float64   `json:"grandTotal"`
	Timestamp      time.Time `json:"timestamp"`
}

// DomainTotal returns the stored subtotal for a domain code.
func (r *StoredRecord) DomainTotal(d catalog.Domain) float64 {
	switch d {
	case catalog.SHG:
		return r.SHGTotal
	case catalog.SHE:
		return r.SHETotal
	case catalog.SHD:
		return r.SHDTotal
	case catalog.SD:
		return r.SDTotal
	case catalog.OCC:
		return r.OCCTotal
	case catalog.COM:
		return r.COMTotal
	case catalog.LOC:
		return r.LOCTotal
	case catalog.SOC:
		return r.SOCTotal
	}
	return 0
}

// ParseResponses decodes the serialized response snapshot. A malformed
// column yields an empty snapshot and ErrMalformedRecord so a single bad
// row never takes down a listing or a report regeneration.
func ParseResponses(responsesJSON string) (response.Snapshot, error) {
	if responsesJSON == "" {
		return response.Snapshot{}, nil
	}
	var snap response.Snapshot
	if err := json.Unmarshal([]byte(responsesJSON), &snap); err != nil {
		return response.Snapshot{}, ErrMalformedRecord
	}
	return snap, nil
}
