// Package pdf renders prescription printouts handed to patients at the
// dispensing counter.
//
// A5 page layout:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: clinic name      │  Rx no. + date    │
//	│  ───────────────────────────────────────────  │
//	│  PATIENT: name / phone / residence            │
//	│  ───────────────────────────────────────────  │
//	│  TABLE: Qty | Drug | Dosage                   │
//	│  ───────────────────────────────────────────  │
//	│  NOTES + QR (prescription id) + footer        │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/pharmacy"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implements pharmacy.PrintoutGenerator using Maroto v2.
type MarotoPDFGenerator struct {
	clinicName string
}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator(clinicName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{clinicName: clinicName}
}

var _ pharmacy.PrintoutGenerator = (*MarotoPDFGenerator)(nil)

// GeneratePrescriptionPDF renders the printout and returns its bytes.
func (g *MarotoPDFGenerator) GeneratePrescriptionPDF(
	_ context.Context,
	rx *entity.Prescription,
	patient *entity.Patient,
	lines []pharmacy.PrescriptionLineForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Prescription "+rx.ID, true).
		WithAuthor(g.clinicName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.clinicName, rx))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(patientRow(patient))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(rx) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: clinic name (left), short prescription number and date (right).
func headerRow(clinicName string, rx *entity.Prescription) core.Row {
	short := rx.ID
	if len(short) > 8 {
		short = short[:8]
	}
	date := rx.CreatedAt.Format("02/01/2006")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(clinicName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Pharmacy dispensary", props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PRESCRIPTION", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("No. "+short, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// patientRow: who the prescription is for.
func patientRow(patient *entity.Patient) core.Row {
	return row.New(13).Add(
		col.New(12).Add(
			text.New("PATIENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(patient.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
			text.New(fmt.Sprintf("Phone: %s   |   Residence: %s",
				nonEmpty(patient.Phone, "-"),
				nonEmpty(patient.Residence, "-"),
			), props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 2, align.Center),
		h("Drug", 5, align.Left),
		h("Dosage", 5, align.Left),
	)
}

// tableLineRows: one row per prescribed drug.
func tableLineRows(lines []pharmacy.PrescriptionLineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		qty := l.Quantity.StringFixed(0)
		if l.Unit != "" {
			qty += " " + l.Unit
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				qty,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.DrugName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				nonEmpty(l.Dosage, "-"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// footerRows: free-text notes, a QR with the full prescription id, and the
// dispensing legend.
func footerRows(rx *entity.Prescription) []core.Row {
	var rows []core.Row

	if rx.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Notes: "+rx.Notes, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	rows = append(rows, row.New(34).Add(
		col.New(4).Add(code.NewQr(rx.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Scan to look up this prescription\nat the dispensing counter.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Valid for a single dispensing.", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 18,
				Left: 3, Color: colorPrimary,
			}),
		),
	))

	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
