// Package model 定义排班优化引擎的核心数据模型
package model

import (
	"time"
)

// ShiftKind 班次类型（仅用于标注展示，不参与约束计算）
type ShiftKind string

const (
	KindMorning   ShiftKind = "morning"   // 早班
	KindAfternoon ShiftKind = "afternoon" // 午后班
	KindNight     ShiftKind = "night"     // 夜班
	KindCustom    ShiftKind = "custom"    // 自定义
)

// KindForStartHour 按开始时间给班次打类型标签
func KindForStartHour(startHour int) ShiftKind {
	switch {
	case startHour >= 5 && startHour < 12:
		return KindMorning
	case startHour >= 12 && startHour < 18:
		return KindAfternoon
	default:
		return KindNight
	}
}

// HourRange 小时区间 [StartHour, EndHour)，取值 0-23
type HourRange struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Covers 检查区间是否完整覆盖 [start, end)
func (r HourRange) Covers(start, end int) bool {
	return r.StartHour <= start && r.EndHour >= end
}

// Overlaps 检查区间是否与 [start, end) 有交集
func (r HourRange) Overlaps(start, end int) bool {
	return r.StartHour < end && start < r.EndHour
}

// DateLayout 日期格式
const DateLayout = "2006-01-02"

// DateRange 日期范围（YYYY-MM-DD，闭区间）
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Days 展开范围内的所有日期
func (dr DateRange) Days() []string {
	start, err1 := time.Parse(DateLayout, dr.StartDate)
	end, err2 := time.Parse(DateLayout, dr.EndDate)
	if err1 != nil || err2 != nil || end.Before(start) {
		return nil
	}
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days
}

// WeekdayIndex 返回星期下标：0=周一 … 6=周日
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekendDate 检查日期是否为周末（周六/周日）
func IsWeekendDate(date string) bool {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return WeekdayIndex(t) >= 5
}

// FormatHour 将整点小时格式化为 HH:00
func FormatHour(hour int) string {
	h := ((hour % 24) + 24) % 24
	return time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04")
}
