// Package report renders the printable assessment report. It is a pure
// consumer: given a complete stored record and the item catalog it
// produces a byte stream, touching no state of its own.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/vineland/vsms-api/internal/domain/archive"
	"github.com/vineland/vsms-api/internal/domain/catalog"
	"github.com/vineland/vsms-api/internal/domain/response"
	"github.com/vineland/vsms-api/internal/domain/scoring"
)

// ClinicInfo is the letterhead printed at the top of every report.
type ClinicInfo struct {
	Name         string
	AddressLine1 string
	AddressLine2 string
}

// Generator renders assessment reports against one fixed catalog.
type Generator struct {
	cat    *catalog.Catalog
	clinic ClinicInfo
}

func NewGenerator(cat *catalog.Catalog, clinic ClinicInfo) *Generator {
	return &Generator{cat: cat, clinic: clinic}
}

// Render produces the A4 report for a stored record. A record whose
// responses column fails to parse still renders, with every item shown
// as not tested. Output is deterministic for identical inputs: the PDF
// creation date is taken from the record, not the wall clock.
func (g *Generator) Render(rec archive.StoredRecord) ([]byte, error) {
	snap, _ := archive.ParseResponses(rec.ResponsesJSON)

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCatalogSort(true)
	doc.SetCreationDate(rec.Timestamp)
	doc.SetModificationDate(rec.Timestamp)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	g.header(doc)
	g.childInfo(doc, rec)
	g.responseTable(doc, snap)
	g.scoreSummary(doc, rec)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) header(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 6, g.clinic.Name, "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 4, g.clinic.AddressLine1, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 4, g.clinic.AddressLine2, "", 1, "C", false, 0, "")
	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 5, "VINELAND SOCIAL MATURITY SCALE", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 4, "(Assessment Report)", "", 1, "C", false, 0, "")
	doc.Ln(2)
	x, y := doc.GetXY()
	w, _ := doc.GetPageSize()
	doc.Line(15, y, w-15, y)
	doc.SetXY(x, y+4)
}

func (g *Generator) childInfo(doc *fpdf.Fpdf, rec archive.StoredRecord) {
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 6, "CHILD INFORMATION", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)

	rows := [][2]string{
		{"Name", rec.ChildName},
		{"Patient ID", rec.PatientID},
		{"Date of Birth", rec.DOB},
		{"Age", rec.Age},
		{"Gender", rec.Gender},
		{"Age Level", catalog.BlockLabel(rec.AgeLevel)},
		{"Assessment Date", rec.AssessmentDate},
		{"Therapist", rec.TherapistName},
	}
	for _, row := range rows {
		doc.CellFormat(40, 5, row[0], "", 0, "L", false, 0, "")
		doc.CellFormat(0, 5, ": "+row[1], "", 1, "L", false, 0, "")
	}
	doc.Ln(3)
}

func (g *Generator) responseTable(doc *fpdf.Fpdf, snap response.Snapshot) {
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 6, "SCALE ITEMS", "", 1, "L", false, 0, "")

	for _, block := range g.cat.AgeBlocks() {
		doc.SetFont("Helvetica", "B", 9)
		doc.SetFillColor(230, 230, 230)
		doc.CellFormat(0, 5, "Age Level "+block.Label, "1", 1, "L", true, 0, "")

		doc.SetFont("Helvetica", "", 8)
		for _, item := range block.Items {
			doc.CellFormat(10, 5, fmt.Sprintf("%d", item.ID), "1", 0, "C", false, 0, "")
			doc.CellFormat(125, 5, item.Skill, "1", 0, "L", false, 0, "")
			doc.CellFormat(15, 5, string(item.Domain), "1", 0, "C", false, 0, "")
			doc.CellFormat(0, 5, responseMark(snap[item.ID]), "1", 1, "C", false, 0, "")
		}
	}
	doc.Ln(3)
}

func (g *Generator) scoreSummary(doc *fpdf.Fpdf, rec archive.StoredRecord) {
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 6, "SCORE SUMMARY", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	for _, d := range catalog.Domains {
		doc.CellFormat(60, 5, d.Name()+" ("+string(d)+")", "1", 0, "L", false, 0, "")
		doc.CellFormat(25, 5, scoring.FormatScore(rec.DomainTotal(d)), "1", 1, "R", false, 0, "")
	}
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(60, 6, "GRAND TOTAL", "1", 0, "L", false, 0, "")
	doc.CellFormat(25, 6, scoring.FormatScore(rec.GrandTotal), "1", 1, "R", false, 0, "")
}

func responseMark(v response.Value) string {
	switch v {
	case response.Yes:
		return "YES"
	case response.No:
		return "NO"
	default:
		return "NT"
	}
}
