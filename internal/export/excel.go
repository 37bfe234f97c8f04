package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"fsr/internal/config"
	"fsr/internal/models"
)

// HardwareHeaders are the register export columns.
var HardwareHeaders = []string{"Component", "Make", "Model", "Rating", "Qty", "Condition"}

// HardwareRows flattens the report's hardware register in display order.
func HardwareRows(r models.ServiceReport) [][]string {
	var rows [][]string
	for _, item := range r.Hardware {
		rows = append(rows, []string{
			item.Type, item.Make, item.Model, item.Rating,
			strconv.Itoa(item.Quantity), item.Condition,
		})
	}
	return rows
}

// RegisterFilename names the hardware register download.
func RegisterFilename(org config.Org, slNo, ext string) string {
	return fmt.Sprintf("%s_Hardware_%s.%s", org.Short, slNo, ext)
}

// WriteCSV writes headers plus rows as CSV.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteExcel writes headers plus rows as a single-sheet workbook with a
// bold, shaded header row.
func WriteExcel(w io.Writer, sheetName string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", string(rune('A'+colIdx)), rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	return f.Write(w)
}
