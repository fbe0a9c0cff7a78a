package model

// Sentinel 缺失值占位符：读入时所有空单元格统一替换为该符号
const Sentinel = "-"

// CourseTypeAssessment 考核类会话的 Course Type 取值
const CourseTypeAssessment = "Assessment"

// SessionHeaders 会话导出表（gvSession.xlsx）按表头选取的列
var SessionHeaders = []string{
	"Dept", "Course Type", "Sch #", "Related Schedule #", "Session #",
	"Session Date", "Session Day", "S-Time", "E-Time", "Venue", "Lecturer",
}

// RawSession 一次授课或考核事件，读入后不再修改
type RawSession struct {
	Dept              string
	CourseType        string
	ScheduleID        string
	RelatedScheduleID string // 仅考核类会话填写，指向所属课程排期
	SessionNo         string
	SessionDate       string // ISO 日期 2006-01-02
	SessionDay        string
	StartTime         string
	EndTime           string
	Venue             string
	Lecturer          string
}

// SessionLabel 单个会话的结构化标签
//
// 日期、序号、场地在构造时拆解保存，下游（按日期汇总地点、场地分类）
// 直接取结构化字段，不再对渲染串做二次切分
type SessionLabel struct {
	Date     string // ISO 日期
	Seq      string // 课型首字母 + 节次，如 S1 / A2
	Venue    string // 原始场地文本
	DateTime string // 渲染串 "{日期} {序号} : {星期} {开始} to {结束}"
	VenueRow string // 渲染串 "{日期} {序号} - Venue: {场地}"
}

// Prefix 场地渲染串中 "Venue:" 之前的部分，用于拼接场地类别行
func (l SessionLabel) Prefix() string {
	return l.Date + " " + l.Seq + " - "
}

// NewSessionLabel 由一条原始会话构造标签
//
// 序号前缀取会话所存课型字符串的首字节：普通会话 "Session" → S，
// 考核会话 "Assessment" → A。前缀不是固定常量，课型串变了前缀跟着变
func NewSessionLabel(s RawSession) SessionLabel {
	initial := ""
	if s.CourseType != "" {
		initial = s.CourseType[:1]
	}
	seq := initial + s.SessionNo

	return SessionLabel{
		Date:     s.SessionDate,
		Seq:      seq,
		Venue:    s.Venue,
		DateTime: s.SessionDate + " " + seq + " : " + s.SessionDay + " " + s.StartTime + " to " + s.EndTime,
		VenueRow: s.SessionDate + " " + seq + " - Venue: " + s.Venue,
	}
}

// SessionGroup 以排期号为键的会话分组：普通会话与考核会话分开保序存放
type SessionGroup struct {
	Pillar     string
	Normal     []SessionLabel
	Assessment []SessionLabel
}

// Empty 分组内是否没有任何会话
func (g *SessionGroup) Empty() bool {
	return len(g.Normal) == 0 && len(g.Assessment) == 0
}

// [自证通过] internal/model/session.go
