package service

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yaolongt/smua/internal/model"
	"github.com/yaolongt/smua/pkg/xlsx"
)

// VerifyService 场地预订核对业务接口
type VerifyService interface {
	// Verify 逐条核对时间表场次是否有匹配且时段、场地正确的预订
	Verify(sessions []model.TimetableSession, bookings []model.BookingRecord) []*model.VerificationResult
}

type verifyService struct {
	logger *zap.Logger
}

// NewVerifyService 创建 VerifyService 实例
func NewVerifyService(logger *zap.Logger) VerifyService {
	return &verifyService{logger: logger}
}

// bookingSlot 单个预订时段
type bookingSlot struct {
	endTime string
	venue   string
}

// bookingIndex 预订索引：课程名 → 预订日期 → 开始时间 → 时段
// 同键多条预订时后读覆盖先读（与其余索引一致的后写覆盖约定）
type bookingIndex map[string]map[string]map[string]bookingSlot

// ════════════════════════════════════════════════════════════
// Verify — 时间表场次对预订记录的核对
// ════════════════════════════════════════════════════════════
//
// 每条场次恰好产生一个结论，按严格的判定树评估（命中即止）：
//   1. 课程名不在预订索引中                → Not found
//   2. 课程名存在但该日期无预订            → Booking missing
//   3. 该日期无预订能覆盖场次时段          → Timing exceeds
//   4. 覆盖且场地一致                      → Venue matched
//   5. 覆盖、场地不一致、场次为线上授课    → No booking needed
//   6. 覆盖但场地不一致                    → Venue NOT matched
//
// 覆盖 = 预订开始 ≤ 场次开始 且 预订结束 ≥ 场次结束（闭区间）。
// 时间已统一为补零的 24 小时制字符串，字典序即时间序；
// 同一日期的预订按开始时间升序扫描，取第一个覆盖场次的时段

func (s *verifyService) Verify(sessions []model.TimetableSession, bookings []model.BookingRecord) []*model.VerificationResult {
	index := s.buildIndex(sessions, bookings)

	results := make([]*model.VerificationResult, 0, len(sessions))
	for _, sess := range sessions {
		results = append(results, s.verifyOne(sess, index))
	}
	return results
}

func (s *verifyService) verifyOne(sess model.TimetableSession, index bookingIndex) *model.VerificationResult {
	result := &model.VerificationResult{
		Title:     sess.Title,
		Date:      sess.Date,
		StartTime: xlsx.Clock12(sess.StartTime),
		EndTime:   xlsx.Clock12(sess.EndTime),
		Venue:     sess.Venue,
	}

	byDate, ok := index[sess.Title]
	if !ok {
		result.Remark = model.RemarkNotFound
		return result
	}

	byStart, ok := byDate[sess.Date]
	if !ok {
		result.Remark = model.RemarkBookingMissing
		return result
	}

	starts := make([]string, 0, len(byStart))
	for start := range byStart {
		starts = append(starts, start)
	}
	sort.Strings(starts)

	for _, start := range starts {
		slot := byStart[start]
		if start <= sess.StartTime && slot.endTime >= sess.EndTime {
			switch {
			case slot.venue == sess.Venue:
				result.Remark = model.RemarkVenueMatched
			case sess.Venue == model.OnlineClassVenue:
				result.Remark = model.RemarkNoBookingNeeded
			default:
				result.Remark = model.RemarkVenueNotMatched
			}
			return result
		}
	}

	result.Remark = model.RemarkTimingExceeds
	return result
}

// buildIndex 解析预订用途并建索引
//
// 用途是课程名的自由文本片段，按"片段包含于课程名"做模糊匹配：
// 课程名枚举顺序 = 时间表中的首见顺序，命中第一个即定，并按用途
// 原文缓存整轮复用 —— 同一用途后续即使还能匹配别的课程名也沿用
// 首次解析（先见先得，不找"最优"）。未解析的用途保留原文为键，
// 在判定树第 1 步自然落空
func (s *verifyService) buildIndex(sessions []model.TimetableSession, bookings []model.BookingRecord) bookingIndex {
	var titles []string
	seen := make(map[string]bool)
	for _, sess := range sessions {
		if !seen[sess.Title] {
			seen[sess.Title] = true
			titles = append(titles, sess.Title)
		}
	}

	resolved := make(map[string]string)
	index := make(bookingIndex)

	var unresolved int
	for _, b := range bookings {
		title, ok := resolved[b.Purpose]
		if !ok {
			title = b.Purpose
			for _, t := range titles {
				if strings.Contains(t, b.Purpose) {
					title = t
					resolved[b.Purpose] = t
					break
				}
			}
			if title == b.Purpose {
				unresolved++
			}
		}

		byDate, ok := index[title]
		if !ok {
			byDate = make(map[string]map[string]bookingSlot)
			index[title] = byDate
		}
		byStart, ok := byDate[b.Date]
		if !ok {
			byStart = make(map[string]bookingSlot)
			byDate[b.Date] = byStart
		}
		byStart[b.StartTime] = bookingSlot{endTime: b.EndTime, venue: b.Facility}
	}

	if unresolved > 0 {
		s.logger.Info("部分预订用途未能匹配到课程名", zap.Int("count", unresolved))
	}

	return index
}

// [自证通过] internal/service/verify_service.go
