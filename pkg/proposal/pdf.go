package proposal

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

// GeneratePDF renders the proposal document using maroto/v2 and returns the
// raw PDF bytes.
func GeneratePDF(data *Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addCustomerBlock(m, data)
	addVenueSection(m, data)
	addRoomSection(m, data)
	addMenuSections(m, data)
	addTotals(m, data)
	addNote(m, data)
	addSignature(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate proposal PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the letterhead and the document reference block.
func addHeader(m core.Maroto, data *Data) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("EVENT PROPOSAL", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	contact := joinNonEmpty([]string{data.CompanyAddress, data.CompanyPhone, data.CompanyEmail}, " | ")
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(contact, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Ref: %s", data.Reference), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	if data.CompanyGSTIN != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(text.New(fmt.Sprintf("GSTIN: %s", data.CompanyGSTIN), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				})),
				col.New(6).Add(text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
					Size:  8,
					Align: align.Right,
				})),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addCustomerBlock adds the prepared-for block and the event summary.
func addCustomerBlock(m core.Maroto, data *Data) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rightLabelStyle := labelStyle
	rightLabelStyle.Align = align.Right
	rightValueStyle := valueStyle
	rightValueStyle.Align = align.Right

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("PREPARED FOR", labelStyle)),
			col.New(6).Add(text.New("EVENT DETAILS", rightLabelStyle)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(data.CustomerName, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(3).Add(text.New("Event Date:", rightLabelStyle)),
			col.New(3).Add(text.New(data.EventDate, rightValueStyle)),
		),
	)

	if data.CustomerCompany != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(6).Add(text.New(data.CustomerCompany, valueStyle)),
				col.New(3).Add(text.New("Guests:", rightLabelStyle)),
				col.New(3).Add(text.New(fmt.Sprintf("%d", data.GuestCount), rightValueStyle)),
			),
		)
	} else if data.GuestCount > 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(6),
				col.New(3).Add(text.New("Guests:", rightLabelStyle)),
				col.New(3).Add(text.New(fmt.Sprintf("%d", data.GuestCount), rightValueStyle)),
			),
		)
	}

	contact := joinNonEmpty([]string{data.CustomerPhone, data.CustomerEmail}, " | ")
	if contact != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(fmt.Sprintf("Contact: %s", contact), valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

func sectionHeaderStyles() (props.Text, props.Text, props.Cell) {
	headerBg := props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	return headerText, headerTextLeft, props.Cell{BackgroundColor: &headerBg}
}

// addVenueSection adds the venue hire table.
func addVenueSection(m core.Maroto, data *Data) {
	if len(data.VenueLines) == 0 {
		return
	}

	headerText, headerTextLeft, headerCell := sectionHeaderStyles()

	m.AddRows(
		row.New(8).Add(
			col.New(2).Add(text.New("Date", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Venue", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Space", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Session", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Charges", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	for i, line := range data.VenueLines {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		cols := []core.Col{
			col.New(2).Add(text.New(line.EventDate, bodyText)),
			col.New(3).Add(text.New(line.Venue, bodyTextLeft)),
			col.New(3).Add(text.New(line.Space, bodyTextLeft)),
			col.New(2).Add(text.New(line.Session, bodyText)),
			col.New(2).Add(text.New(FormatINR(line.Rate), bodyTextRight)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}

	m.AddRows(row.New(2))
}

// addRoomSection adds the accommodation table.
func addRoomSection(m core.Maroto, data *Data) {
	if len(data.RoomLines) == 0 {
		return
	}

	headerText, headerTextLeft, headerCell := sectionHeaderStyles()

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("Room Category", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Rate", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Rooms", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Guests", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	for i, line := range data.RoomLines {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		cols := []core.Col{
			col.New(4).Add(text.New(line.Category, bodyTextLeft)),
			col.New(2).Add(text.New(FormatINR(line.Rate), bodyTextRight)),
			col.New(2).Add(text.New(fmt.Sprintf("%d", line.NumberOfRooms), bodyText)),
			col.New(2).Add(text.New(fmt.Sprintf("%d", line.Occupancy), bodyText)),
			col.New(2).Add(text.New(FormatINR(line.LineTotal), bodyTextRight)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}

	m.AddRows(row.New(2))
}

// addMenuSections adds one block per selected menu package.
func addMenuSections(m core.Maroto, data *Data) {
	if len(data.MenuBlocks) == 0 {
		return
	}

	_, headerTextLeft, headerCell := sectionHeaderStyles()
	headerTextRight := headerTextLeft
	headerTextRight.Align = align.Right

	for _, block := range data.MenuBlocks {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(block.PackageName, headerTextLeft)).WithStyle(&headerCell),
				col.New(4).Add(text.New(FormatINR(block.PackagePrice), headerTextRight)).WithStyle(&headerCell),
			),
		)

		for _, item := range block.Items {
			itemText := props.Text{Size: 7, Align: align.Left}
			priceText := props.Text{Size: 7, Align: align.Right}

			label := item.Name
			price := "Included"
			if !item.IsPackageItem {
				if item.Quantity > 1 {
					label = fmt.Sprintf("%s x %d", item.Name, item.Quantity)
				}
				price = FormatINR(item.AdditionalPrice * float64(item.Quantity))
			}

			m.AddRows(
				row.New(6).Add(
					col.New(8).Add(text.New(label, itemText)),
					col.New(4).Add(text.New(price, priceText)),
				),
			)
		}

		m.AddRows(row.New(2))
	}
}

// addTotals adds the category subtotals and the grand total band.
func addTotals(m core.Maroto, data *Data) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	addSummaryRow := func(label string, amount float64) {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatINR(amount), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	gstSuffix := ""
	if data.IncludeGST {
		gstSuffix = " (incl. GST)"
	}

	if data.VenueRentalTotal > 0 {
		addSummaryRow("Venue Rental"+gstSuffix, data.VenueRentalTotal)
	}
	if data.RoomTotal > 0 {
		addSummaryRow("Accommodation"+gstSuffix, data.RoomTotal)
	}
	if data.MenuTotal > 0 {
		addSummaryRow("Catering"+gstSuffix, data.MenuTotal)
	}
	if data.DiscountAmount > 0 {
		label := "Discount"
		if data.DiscountLabel != "" {
			label = fmt.Sprintf("Discount (%s)", data.DiscountLabel)
		}
		addSummaryRow(label, -data.DiscountAmount)
	}

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandLabel := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Grand Total", grandLabel)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatINR(data.GrandTotal), grandLabel)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addNote adds the free-text note section if present.
func addNote(m core.Maroto, data *Data) {
	if data.Note == "" {
		return
	}

	sectionLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("NOTES", sectionLabel)),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(data.Note, props.Text{
				Size:  8,
				Align: align.Left,
			})),
		),
	)

	m.AddRows(row.New(3))
}

// addSignature adds the closing signature band.
func addSignature(m core.Maroto, data *Data) {
	m.AddRows(row.New(10))

	lineStyle := props.Text{
		Size:  8,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("____________________________", lineStyle)),
			col.New(6).Add(text.New("____________________________", lineStyle)),
		),
	)

	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Guest Acceptance", labelStyle)),
			col.New(6).Add(text.New(fmt.Sprintf("For %s", data.CompanyName), labelStyle)),
		),
	)
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	result := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if result != "" {
			result += sep
		}
		result += p
	}
	return result
}
