package assessment

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vineland/vsms-api/internal/domain/archive"
)

// RepoPG is the Postgres-backed store, used when the service owns its
// archive instead of delegating to the spreadsheet endpoint.
type RepoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) *RepoPG {
	return &RepoPG{pool: pool}
}

const assessmentCols = `patient_id, child_name, dob, age, gender,
	assessment_date, age_level, therapist_name, assessment_id, responses_json,
	shg_total, she_total, shd_total, sd_total, occ_total, com_total,
	loc_total, soc_total, grand_total, created_at`

func (r *RepoPG) Submit(ctx context.Context, rec archive.StoredRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO assessments (patient_id, child_name, dob, age, gender,
			assessment_date, age_level, therapist_name, assessment_id, responses_json,
			shg_total, she_total, shd_total, sd_total, occ_total, com_total,
			loc_total, soc_total, grand_total)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		rec.PatientID, rec.ChildName, rec.DOB, rec.Age, rec.Gender,
		rec.AssessmentDate, rec.AgeLevel, rec.TherapistName, rec.AssessmentID, rec.ResponsesJSON,
		rec.SHGTotal, rec.SHETotal, rec.SHDTotal, rec.SDTotal, rec.OCCTotal, rec.COMTotal,
		rec.LOCTotal, rec.SOCTotal, rec.GrandTotal)
	return err
}

func (r *RepoPG) FetchAll(ctx context.Context) ([]archive.StoredRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+assessmentCols+` FROM assessments ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []archive.StoredRecord
	for rows.Next() {
		var rec archive.StoredRecord
		if err := rows.Scan(&rec.PatientID, &rec.ChildName, &rec.DOB, &rec.Age, &rec.Gender,
			&rec.AssessmentDate, &rec.AgeLevel, &rec.TherapistName, &rec.AssessmentID, &rec.ResponsesJSON,
			&rec.SHGTotal, &rec.SHETotal, &rec.SHDTotal, &rec.SDTotal, &rec.OCCTotal, &rec.COMTotal,
			&rec.LOCTotal, &rec.SOCTotal, &rec.GrandTotal, &rec.Timestamp); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
