package solver

import (
	"sort"

	"github.com/zhipai/zhipai/pkg/model"
)

// fallbackAssign 轮转启发式降级分配
//
// 按天序遍历班次，用环形游标在员工间轮转，直到满足 MinStaff
// 或所有员工各试一轮。候选判定复用求解路径的可用性与资质谓词，
// 且同一员工同一天不重复上岗；不保证周工时与休息约束。
func fallbackAssign(in *Input) *Result {
	result := &Result{
		Status:        StatusFallback,
		StartDate:     in.StartDate,
		Assignments:   []*model.Assignment{},
		EmployeeHours: make(map[string]float64),
	}
	if len(in.Employees) == 0 || len(in.Shifts) == 0 {
		return result
	}

	shifts := make([]*model.Shift, len(in.Shifts))
	copy(shifts, in.Shifts)
	sort.SliceStable(shifts, func(i, j int) bool {
		if shifts[i].Day != shifts[j].Day {
			return shifts[i].Day < shifts[j].Day
		}
		return shifts[i].StartHour < shifts[j].StartHour
	})

	// booked[day] 当天已上岗的员工集合
	booked := make(map[int]map[string]bool)
	cursor := 0
	var totalHours, totalCost float64

	for _, s := range shifts {
		if booked[s.Day] == nil {
			booked[s.Day] = make(map[string]bool)
		}
		staffed := 0
		for tried := 0; tried < len(in.Employees) && staffed < s.MinStaff; tried++ {
			e := in.Employees[cursor%len(in.Employees)]
			cursor++
			if booked[s.Day][e.ID] {
				continue
			}
			if !availableFor(e, s, in.Constraints) || !qualifiedFor(e, s, in.Constraints) {
				continue
			}

			hours := float64(s.DurationHours())
			result.Assignments = append(result.Assignments, &model.Assignment{
				EmployeeID:   e.ID,
				EmployeeName: e.Name,
				ShiftID:      s.ID,
				TemplateID:   s.TemplateID,
				Date:         s.Date,
				StartTime:    model.FormatHour(s.StartHour),
				EndTime:      model.FormatHour(s.EndHour),
				Hours:        s.DurationHours(),
			})
			booked[s.Day][e.ID] = true
			result.EmployeeHours[e.ID] += hours
			totalHours += hours
			totalCost += hours * e.HourlyRate
			staffed++
		}
	}

	result.TotalCost = totalCost
	result.Metrics = Metrics{
		TotalAssignments: len(result.Assignments),
		TotalHours:       totalHours,
		CoverageRate:     coverageRate(len(result.Assignments), len(in.Shifts), len(in.Employees)),
	}
	if n := len(in.Employees); n > 0 {
		result.Metrics.AvgHoursPerEmployee = totalHours / float64(n)
	}
	return result
}
