package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const yellowPageSheet = "Yellow Page"

var xlsxHeader = []any{"#", "Date", "Location", "Climb Type", "# of Setters"}

// RenderXLSX writes one worksheet with a block per wall type.
func RenderXLSX(p YellowPage) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", yellowPageSheet); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	title := p.GymName
	if title == "" {
		title = p.GymID
	}
	if err := f.SetCellValue(yellowPageSheet, "A1", "Yellow Page - "+title); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(yellowPageSheet, "A2", "Date Range: "+p.DateRange); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(yellowPageSheet, "A1", "A1", bold); err != nil {
		return nil, err
	}

	row := 4
	for _, sec := range p.Sections {
		if err := f.SetCellValue(yellowPageSheet, cell(1, row), strings.ToUpper(sec.WallType)); err != nil {
			return nil, err
		}
		row++
		if err := f.SetSheetRow(yellowPageSheet, cell(1, row), &xlsxHeader); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(yellowPageSheet, cell(1, row-1), cell(len(xlsxHeader), row), bold); err != nil {
			return nil, err
		}
		row++
		for _, r := range sec.Rows {
			values := []any{r.Number, r.Date, r.Location, r.ClimbType, r.Setters}
			if err := f.SetSheetRow(yellowPageSheet, cell(1, row), &values); err != nil {
				return nil, err
			}
			row++
		}
		row++
	}

	widths := map[string]float64{"A": 5, "B": 8, "C": 40, "D": 24, "E": 13}
	for col, w := range widths {
		if err := f.SetColWidth(yellowPageSheet, col, col, w); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
