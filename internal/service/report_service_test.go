package service

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/yaolongt/smua/internal/model"
)

func newTestReportService(keepUnmapped bool) ReportService {
	n := NewNormalizer(reportShortForms, []string{"School of Accountancy"}, testPillars)
	return NewReportService(n, keepUnmapped, zap.NewNop())
}

func TestTotalPax(t *testing.T) {
	tests := []struct {
		registered string
		enrolled   string
		want       int
	}{
		{"-", "-", 0},
		{"-", "12", 12},
		{"8", "-", 8},
		{"8", "12", 20},
	}
	for _, tt := range tests {
		if got := TotalPax(tt.registered, tt.enrolled); got != tt.want {
			t.Errorf("TotalPax(%q, %q) 期望 %d, 实际 %d", tt.registered, tt.enrolled, tt.want, got)
		}
	}
}

func TestAudienceLabel(t *testing.T) {
	tests := []struct {
		audience string
		client   string
		want     string
	}{
		{"-", "Acme Pte Ltd", "-"},
		{"Corporate", "-", "Corporate"},
		{"Corporate", "Acme Pte Ltd", "Corporate : Acme Pte Ltd"},
	}
	for _, tt := range tests {
		sch := model.CourseSchedule{Audience: tt.audience, ClientName: tt.client}
		if got := AudienceLabel(sch); got != tt.want {
			t.Errorf("AudienceLabel(%q, %q) 期望 %q, 实际 %q", tt.audience, tt.client, tt.want, got)
		}
	}
}

func testGroup() *model.SessionGroup {
	label := func(sess model.RawSession) model.SessionLabel {
		return model.NewSessionLabel(sess)
	}
	return &model.SessionGroup{
		Pillar: "FIT",
		Normal: []model.SessionLabel{
			// 故意乱序：S2 在 S1 之前
			label(model.RawSession{CourseType: "Session", SessionNo: "2", SessionDate: "2024-03-08",
				SessionDay: "Fri", StartTime: "09:00 AM", EndTime: "05:00 PM", Venue: "School of Accountancy SR2-1"}),
			label(model.RawSession{CourseType: "Session", SessionNo: "1", SessionDate: "2024-03-01",
				SessionDay: "Fri", StartTime: "09:00 AM", EndTime: "05:00 PM", Venue: "Online Class"}),
		},
		Assessment: []model.SessionLabel{
			// 考核日期早于普通场次，但仍须排在普通段之后
			label(model.RawSession{CourseType: "Assessment", SessionNo: "1", SessionDate: "2024-02-20",
				SessionDay: "Tue", StartTime: "09:00 AM", EndTime: "12:00 PM", Venue: "Online Class"}),
		},
	}
}

func TestBuildRows(t *testing.T) {
	svc := newTestReportService(true)

	schedules := []model.CourseSchedule{{
		CourseType: "Session", ScheduleID: "10001", Audience: "Corporate", ClientName: "Acme Pte Ltd",
		RunID: "R-1", Title: "Advanced Excel", StartDate: "2024-03-01", EndDate: "2024-03-08",
		Status: "Confirmed", EnrolledPax: "12",
	}}
	enrolments := map[string]string{"10001": "8"}

	rows, excluded := svc.BuildRows(schedules, map[string]*model.SessionGroup{"10001": testGroup()}, enrolments)
	if len(rows) != 1 || len(excluded) != 0 {
		t.Fatalf("期望 1 行 0 排除, 实际 %d 行 %d 排除", len(rows), len(excluded))
	}
	row := rows[0]

	if row.TotalPax != 20 {
		t.Errorf("总人数期望 20, 实际 %d", row.TotalPax)
	}
	if row.DeliveryMode != "Online" {
		t.Errorf("授课形式期望 Online, 实际 %q", row.DeliveryMode)
	}
	wantCounts := "No. of sessions: 2 \nNo. of assessments: 1"
	if row.SessionCounts != wantCounts {
		t.Errorf("场次统计期望 %q, 实际 %q", wantCounts, row.SessionCounts)
	}
	if row.LastUpdated != "Last Updated: -" {
		t.Errorf("更新时间列期望占位值, 实际 %q", row.LastUpdated)
	}
}

// 时间列与场地列均为两段拼接：普通段排序在前，考核段排序在后
func TestBuildRows_TwoBlockOrder(t *testing.T) {
	svc := newTestReportService(true)

	schedules := []model.CourseSchedule{{
		CourseType: "Session", ScheduleID: "10001", Audience: "-", ClientName: "-",
		StartDate: "2024-03-01", EndDate: "2024-03-08", EnrolledPax: "-",
	}}
	rows, _ := svc.BuildRows(schedules, map[string]*model.SessionGroup{"10001": testGroup()}, nil)
	row := rows[0]

	wantTimes := "2024-03-01 S1 : Fri 09:00 AM to 05:00 PM \n" +
		"2024-03-08 S2 : Fri 09:00 AM to 05:00 PM \n" +
		"2024-02-20 A1 : Tue 09:00 AM to 12:00 PM"
	if row.SessionTimes != wantTimes {
		t.Errorf("时间列期望 %q, 实际 %q", wantTimes, row.SessionTimes)
	}

	// 场地列已做缩写展开：SR → " Seminar Room"（替换保留原有空格）
	wantVenues := "2024-03-01 S1 - Venue: Online Class \n" +
		"2024-03-08 S2 - Venue: School of Accountancy  Seminar Room2-1 \n" +
		"2024-02-20 A1 - Venue: Online Class"
	if row.SessionVenue != wantVenues {
		t.Errorf("场地列期望 %q, 实际 %q", wantVenues, row.SessionVenue)
	}

	wantCategories := "2024-03-01 S1 - Online \n" +
		"2024-03-08 S2 - Onsite \n" +
		"2024-02-20 A1 - Online"
	if row.VenueCategory != wantCategories {
		t.Errorf("场地类别列期望 %q, 实际 %q", wantCategories, row.VenueCategory)
	}
}

// 按日期汇总地点：同一天只取首个场地
func TestBuildRows_LocationFirstWins(t *testing.T) {
	svc := newTestReportService(true)

	group := &model.SessionGroup{
		Pillar: "FIT",
		Normal: []model.SessionLabel{
			model.NewSessionLabel(model.RawSession{CourseType: "Session", SessionNo: "1",
				SessionDate: "2024-03-01", Venue: "Room A"}),
			model.NewSessionLabel(model.RawSession{CourseType: "Session", SessionNo: "2",
				SessionDate: "2024-03-01", Venue: "Room B"}),
		},
	}
	schedules := []model.CourseSchedule{{
		CourseType: "Session", ScheduleID: "10001", Audience: "-", ClientName: "-",
		StartDate: "2024-03-01", EndDate: "2024-03-01", EnrolledPax: "-",
	}}
	rows, _ := svc.BuildRows(schedules, map[string]*model.SessionGroup{"10001": group}, nil)

	want := "2024-03-01 \nRoom A\n\n"
	if got := rows[0].LocationByDate; got != want {
		t.Errorf("地点汇总期望 %q, 实际 %q", want, got)
	}
}

func TestBuildRows_Excluded(t *testing.T) {
	svc := newTestReportService(false)

	groups := map[string]*model.SessionGroup{
		"10002": {},
		"10003": {Pillar: FallbackPillar, Normal: []model.SessionLabel{{Date: "2024-03-01", VenueRow: "x"}}},
	}
	schedules := []model.CourseSchedule{
		{CourseType: "Assessment", ScheduleID: "10001"},
		{CourseType: "Session", ScheduleID: "10002"},
		{CourseType: "Session", ScheduleID: "10003"},
		{CourseType: "Session", ScheduleID: "10004"},
	}
	rows, excluded := svc.BuildRows(schedules, groups, nil)

	if len(rows) != 0 {
		t.Fatalf("期望全部排除, 实际保留 %d 行", len(rows))
	}
	wantReasons := map[string]string{
		"10001": ExcludeAssessmentSchedule,
		"10002": ExcludeNoSessions,
		"10003": ExcludeUnmappedPillar,
		"10004": ExcludeNoSessions,
	}
	for _, ex := range excluded {
		if want := wantReasons[ex.ScheduleID]; ex.Reason != want {
			t.Errorf("排期 %s 排除原因期望 %q, 实际 %q", ex.ScheduleID, want, ex.Reason)
		}
	}

	// No dept 保留策略开启时 10003 应保留
	keep := newTestReportService(true)
	rows, _ = keep.BuildRows(schedules, groups, nil)
	if len(rows) != 1 || rows[0].CourseNo != "10003" {
		t.Errorf("保留策略下期望仅 10003 出行, 实际 %d 行", len(rows))
	}
}

// 整条场地标签为占位符时跳过该条目
func TestBuildRows_SentinelVenueRow(t *testing.T) {
	svc := newTestReportService(true)

	group := &model.SessionGroup{
		Pillar: "FIT",
		Normal: []model.SessionLabel{
			{Date: "2024-03-01", Seq: "S1", Venue: "Room A", DateTime: "dt", VenueRow: model.Sentinel},
			model.NewSessionLabel(model.RawSession{CourseType: "Session", SessionNo: "2",
				SessionDate: "2024-03-02", Venue: "Room B"}),
		},
	}
	schedules := []model.CourseSchedule{{
		CourseType: "Session", ScheduleID: "10001", Audience: "-", ClientName: "-",
		StartDate: "2024-03-01", EndDate: "2024-03-02", EnrolledPax: "-",
	}}
	rows, _ := svc.BuildRows(schedules, map[string]*model.SessionGroup{"10001": group}, nil)

	if strings.Contains(rows[0].SessionVenue, model.Sentinel+" \n") {
		t.Errorf("占位标签不应进入场地列: %q", rows[0].SessionVenue)
	}
	if strings.Contains(rows[0].LocationByDate, "2024-03-01") {
		t.Errorf("占位标签不应进入地点汇总: %q", rows[0].LocationByDate)
	}
}

func TestSortRows_Stable(t *testing.T) {
	svc := newTestReportService(true)

	rows := []*model.CourseReportRow{
		{CourseNo: "10002", StartDate: "2024-03-01", Title: "B"},
		{CourseNo: "10001", StartDate: "2024-03-01", Title: "A-first"},
		{CourseNo: "10001", StartDate: "2024-03-01", Title: "A-second"},
		{CourseNo: "10003", StartDate: "2024-01-01", Title: "C"},
	}
	svc.SortRows(rows)

	wantTitles := []string{"C", "A-first", "A-second", "B"}
	for i, want := range wantTitles {
		if rows[i].Title != want {
			t.Errorf("第 %d 行期望 %q, 实际 %q", i, want, rows[i].Title)
		}
	}
}

func TestLongCourses(t *testing.T) {
	svc := newTestReportService(true)

	rows := []*model.CourseReportRow{
		{CourseNo: "10001", StartDate: "2024-01-01", EndDate: "2024-01-07"}, // 恰好 6 天，不入选
		{CourseNo: "10002", StartDate: "2024-01-01", EndDate: "2024-01-08"}, // 7 天，入选
		{CourseNo: "10003", StartDate: "2024-01-01", EndDate: "2024-02-01"},
		{CourseNo: "10004", StartDate: "2024-01-01", EndDate: "-"}, // 日期不可解析，跳过
	}
	long := svc.LongCourses(rows, 6)

	if len(long) != 2 {
		t.Fatalf("长课程数期望 2, 实际 %d", len(long))
	}
	// 按（开课日期, 结课日期）重排
	if long[0].CourseNo != "10002" || long[1].CourseNo != "10003" {
		t.Errorf("长课程排序错误: %s, %s", long[0].CourseNo, long[1].CourseNo)
	}
}

// [自证通过] internal/service/report_service_test.go
