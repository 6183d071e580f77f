// Package stats 提供排班统计分析功能
package stats

import (
	"github.com/zhipai/zhipai/pkg/model"
)

// CoverageMetrics 覆盖率指标
type CoverageMetrics struct {
	TotalSlots      int     `json:"total_slots"`      // 总槽位数（Σ 班次最低人数）
	FilledSlots     int     `json:"filled_slots"`     // 已填充槽位数
	OverallCoverage float64 `json:"overall_coverage"` // 整体覆盖率 (%)

	DailyCoverage  map[string]DayCoverage `json:"daily_coverage"`  // 每日覆盖情况
	HourlyCoverage map[int]float64        `json:"hourly_coverage"` // 按小时覆盖率 (0-23)

	Understaffed []UnderstaffedShift `json:"understaffed"` // 人手不足班次
}

// DayCoverage 每日覆盖情况
type DayCoverage struct {
	Date         string  `json:"date"`
	RequiredSlot int     `json:"required_slots"`
	Filled       int     `json:"filled"`
	CoverageRate float64 `json:"coverage_rate"`
	TotalHours   float64 `json:"total_hours"`
}

// UnderstaffedShift 人手不足班次
type UnderstaffedShift struct {
	ShiftID  string `json:"shift_id"`
	Date     string `json:"date"`
	Required int    `json:"required"`
	Assigned int    `json:"assigned"`
	Shortage int    `json:"shortage"`
}

// CoverageAnalyzer 覆盖率分析器
//
// 以展开后的班次实例为需求侧，以落库分配行为供给侧，
// 分配行按 模板ID_日期 归并到对应班次。
type CoverageAnalyzer struct{}

// NewCoverageAnalyzer 创建覆盖率分析器
func NewCoverageAnalyzer() *CoverageAnalyzer {
	return &CoverageAnalyzer{}
}

// Analyze 分析覆盖率
func (c *CoverageAnalyzer) Analyze(shifts []*model.Shift, assignments []*model.PersistedAssignment) *CoverageMetrics {
	metrics := &CoverageMetrics{
		DailyCoverage:  make(map[string]DayCoverage),
		HourlyCoverage: make(map[int]float64),
	}
	if len(shifts) == 0 {
		metrics.OverallCoverage = 100
		return metrics
	}

	// 每个班次实例的实际分配人数
	type slotKey struct {
		template string
		date     string
	}
	filledByShift := make(map[slotKey]int)
	for _, a := range assignments {
		filledByShift[slotKey{template: a.TemplateID, date: a.Date}]++
	}

	dailyRequired := make(map[string]int)
	dailyFilled := make(map[string]int)
	dailyHours := make(map[string]float64)
	hourlyRequired := make(map[int]int)
	hourlyFilled := make(map[int]int)

	for _, s := range shifts {
		assigned := filledByShift[slotKey{template: s.TemplateID, date: s.Date}]
		filled := assigned
		if filled > s.MinStaff {
			filled = s.MinStaff
		}

		metrics.TotalSlots += s.MinStaff
		metrics.FilledSlots += filled
		dailyRequired[s.Date] += s.MinStaff
		dailyFilled[s.Date] += filled
		dailyHours[s.Date] += float64(assigned * s.DurationHours())

		for h := 0; h < s.DurationHours(); h++ {
			hour := (s.StartHour + h) % 24
			hourlyRequired[hour] += s.MinStaff
			hourlyFilled[hour] += filled
		}

		if assigned < s.MinStaff {
			metrics.Understaffed = append(metrics.Understaffed, UnderstaffedShift{
				ShiftID:  s.ID,
				Date:     s.Date,
				Required: s.MinStaff,
				Assigned: assigned,
				Shortage: s.MinStaff - assigned,
			})
		}
	}

	if metrics.TotalSlots > 0 {
		metrics.OverallCoverage = float64(metrics.FilledSlots) / float64(metrics.TotalSlots) * 100
	}

	for date, required := range dailyRequired {
		day := DayCoverage{
			Date:         date,
			RequiredSlot: required,
			Filled:       dailyFilled[date],
			TotalHours:   dailyHours[date],
		}
		if required > 0 {
			day.CoverageRate = float64(day.Filled) / float64(required) * 100
		}
		metrics.DailyCoverage[date] = day
	}

	for hour := 0; hour < 24; hour++ {
		if hourlyRequired[hour] > 0 {
			metrics.HourlyCoverage[hour] = float64(hourlyFilled[hour]) / float64(hourlyRequired[hour]) * 100
		} else {
			metrics.HourlyCoverage[hour] = 100
		}
	}

	return metrics
}
