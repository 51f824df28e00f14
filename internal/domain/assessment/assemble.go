package assessment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vineland/vsms-api/internal/domain/catalog"
	"github.com/vineland/vsms-api/internal/domain/patient"
	"github.com/vineland/vsms-api/internal/domain/response"
	"github.com/vineland/vsms-api/internal/domain/scoring"
)

// ValidationError reports the first failing submission gate. Gates are
// evaluated in a fixed order and only the first failure is surfaced.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Assemble validates the candidate (info, responses) pair and, when
// every gate passes, produces an immutable scored record stamped at the
// given time. It performs no I/O.
func Assemble(cat *catalog.Catalog, info patient.Info, rs *response.Set, at time.Time) (*Record, error) {
	if strings.TrimSpace(info.ChildName) == "" {
		return nil, &ValidationError{Message: "child name required"}
	}
	if strings.TrimSpace(info.TherapistName) == "" {
		return nil, &ValidationError{Message: "therapist name required"}
	}
	if strings.TrimSpace(info.PatientID) == "" {
		return nil, &ValidationError{Message: "patient id required"}
	}
	if rs.CountAttempted() < 1 {
		return nil, &ValidationError{Message: "at least one item must be scored"}
	}

	snap := rs.Snapshot()
	return &Record{
		Info:           info,
		AssessmentID:   newAssessmentID(at),
		AssessmentDate: at.Format("02/01/2006"),
		Timestamp:      at.UTC(),
		Responses:      snap,
		Totals:         scoring.Score(cat, snap),
	}, nil
}

// newAssessmentID builds a time-derived token distinct from the patient
// id. The uuid suffix keeps same-second submissions apart; collisions
// are cosmetic, not safety-critical.
func newAssessmentID(at time.Time) string {
	return fmt.Sprintf("VSMS-%s-%s", at.Format("20060102150405"), uuid.NewString()[:8])
}
