package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateEstimatePDF creates a quote-style PDF document from a cost
// estimate using maroto/v2. It returns the raw PDF bytes or an error.
func GenerateEstimatePDF(data EstimateExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addEstimateHeader(m, data)
	addEstimateTableHeader(m)
	for _, r := range data.Rows {
		addEstimateRow(m, r)
	}
	addEstimateTotal(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addEstimateHeader adds the title and event context to the PDF.
func addEstimateHeader(m core.Maroto, data EstimateExport) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Event Cost Estimate", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	subtitle := fmt.Sprintf("Event: %s  |  Tier: %s  |  Guests: %d",
		data.EventType, data.TierName, data.Guests)
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New(subtitle, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addEstimateTableHeader adds the column header row for the breakdown table.
func addEstimateTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Service", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Unit", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Cost", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addEstimateRow adds a single breakdown row to the table.
func addEstimateRow(m core.Maroto, r BreakdownRow) {
	baseText := props.Text{Size: 9, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(r.Service, leftText)),
			col.New(3).Add(text.New(r.Unit.Label(), baseText)),
			col.New(3).Add(text.New(FormatINR(r.Cost), rightText)),
		),
	)
}

// addEstimateTotal adds the total row under the table.
func addEstimateTotal(m core.Maroto, data EstimateExport) {
	m.AddRows(row.New(3))
	m.AddRows(
		row.New(9).Add(
			col.New(9).Add(
				text.New("Estimated Total:", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
			col.New(3).Add(
				text.New(FormatINR(data.Total), props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)
}
