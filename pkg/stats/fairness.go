// Package stats 提供排班统计分析功能
package stats

import (
	"math"
	"sort"

	"github.com/zhipai/zhipai/pkg/model"
)

// FairnessMetrics 公平性指标
type FairnessMetrics struct {
	WorkloadGini        float64 `json:"workload_gini"`          // 工时基尼系数 (0=完全公平)
	WorkloadVariance    float64 `json:"workload_variance"`      // 工时方差
	WorkloadStdDev      float64 `json:"workload_std_dev"`       // 工时标准差
	AvgHoursPerEmployee float64 `json:"avg_hours_per_employee"` // 人均工时
	MaxHours            float64 `json:"max_hours"`              // 最大工时
	MinHours            float64 `json:"min_hours"`              // 最小工时

	NightShiftGini   float64 `json:"night_shift_gini"`   // 夜班分配基尼系数
	WeekendShiftGini float64 `json:"weekend_shift_gini"` // 周末班分配基尼系数

	EmployeeStats []EmployeeStat `json:"employee_stats"`

	OverallFairnessScore float64 `json:"overall_fairness_score"` // 综合公平性评分 (0-100)
}

// EmployeeStat 员工统计
type EmployeeStat struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	TotalHours    float64 `json:"total_hours"`
	ShiftCount    int     `json:"shift_count"`
	NightShifts   int     `json:"night_shifts"`
	WeekendShifts int     `json:"weekend_shifts"`
	Deviation     float64 `json:"deviation"` // 与人均工时的偏差百分比
}

// FairnessAnalyzer 公平性分析器
type FairnessAnalyzer struct {
	nightShiftStart int // 夜班起始小时
	nightShiftEnd   int // 夜班结束小时
}

// NewFairnessAnalyzer 创建公平性分析器
func NewFairnessAnalyzer() *FairnessAnalyzer {
	return &FairnessAnalyzer{
		nightShiftStart: 22,
		nightShiftEnd:   6,
	}
}

// Analyze 分析落库分配行的公平性
//
// 未接到任何班次的员工按零值参与统计，否则基尼系数会偏乐观。
func (f *FairnessAnalyzer) Analyze(assignments []*model.PersistedAssignment, employees []*model.Employee) *FairnessMetrics {
	if len(employees) == 0 {
		return &FairnessMetrics{OverallFairnessScore: 100}
	}

	statMap := make(map[string]*EmployeeStat, len(employees))
	for _, e := range employees {
		statMap[e.ID] = &EmployeeStat{EmployeeID: e.ID, EmployeeName: e.Name}
	}

	for _, a := range assignments {
		stat, ok := statMap[a.EmployeeID]
		if !ok {
			stat = &EmployeeStat{EmployeeID: a.EmployeeID, EmployeeName: a.EmployeeID}
			statMap[a.EmployeeID] = stat
		}
		stat.TotalHours += float64(a.DurationHours())
		stat.ShiftCount++
		if f.isNightShift(a.StartHour, a.EndHour) {
			stat.NightShifts++
		}
		if model.IsWeekendDate(a.Date) {
			stat.WeekendShifts++
		}
	}

	stats := make([]EmployeeStat, 0, len(statMap))
	for _, s := range statMap {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalHours != stats[j].TotalHours {
			return stats[i].TotalHours > stats[j].TotalHours
		}
		return stats[i].EmployeeID < stats[j].EmployeeID
	})

	hours := make([]float64, len(stats))
	nights := make([]float64, len(stats))
	weekends := make([]float64, len(stats))
	for i, s := range stats {
		hours[i] = s.TotalHours
		nights[i] = float64(s.NightShifts)
		weekends[i] = float64(s.WeekendShifts)
	}

	avg := mean(hours)
	variance := varianceOf(hours, avg)
	stdDev := math.Sqrt(variance)
	for i := range stats {
		if avg > 0 {
			stats[i].Deviation = (stats[i].TotalHours - avg) / avg * 100
		}
	}

	maxH, minH := rangeOf(hours)
	workloadGini := gini(hours)
	nightGini := gini(nights)
	weekendGini := gini(weekends)

	return &FairnessMetrics{
		WorkloadGini:         workloadGini,
		WorkloadVariance:     variance,
		WorkloadStdDev:       stdDev,
		AvgHoursPerEmployee:  avg,
		MaxHours:             maxH,
		MinHours:             minH,
		NightShiftGini:       nightGini,
		WeekendShiftGini:     weekendGini,
		EmployeeStats:        stats,
		OverallFairnessScore: overallScore(workloadGini, nightGini, weekendGini, stdDev, avg),
	}
}

// isNightShift 班次起点落在深夜区间即视为夜班
func (f *FairnessAnalyzer) isNightShift(startHour, endHour int) bool {
	return startHour >= f.nightShiftStart || startHour < f.nightShiftEnd
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func varianceOf(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return sumSquares / float64(len(values))
}

func rangeOf(values []float64) (max, min float64) {
	if len(values) == 0 {
		return 0, 0
	}
	max, min = values[0], values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return
}

// gini 计算基尼系数，值域 [0, 1]
func gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	if sum == 0 {
		return 0
	}

	g := 0.0
	for i, v := range sorted {
		g += (2*float64(i+1) - float64(n) - 1) * v
	}
	g = g / (float64(n) * sum)
	return math.Max(0, math.Min(1, g))
}

// overallScore 综合公平性评分
func overallScore(workloadGini, nightGini, weekendGini, stdDev, avgHours float64) float64 {
	const (
		workloadWeight = 0.4
		nightWeight    = 0.25
		weekendWeight  = 0.25
		stdDevWeight   = 0.1
	)

	workloadScore := (1 - workloadGini) * 100
	nightScore := (1 - nightGini) * 100
	weekendScore := (1 - weekendGini) * 100

	// 变异系数越低分数越高
	cvScore := 100.0
	if avgHours > 0 {
		cv := stdDev / avgHours
		cvScore = math.Max(0, 100-cv*200)
	}

	score := workloadWeight*workloadScore +
		nightWeight*nightScore +
		weekendWeight*weekendScore +
		stdDevWeight*cvScore
	return math.Max(0, math.Min(100, score))
}
