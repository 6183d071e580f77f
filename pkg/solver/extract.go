package solver

import (
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/zhipai/zhipai/pkg/model"
)

// extract 从求解响应提取分配方案与指标
func (sm *scheduleModel) extract(resp *cmpb.CpSolverResponse, status Status, elapsed time.Duration) *Result {
	result := &Result{
		Status:        status,
		StartDate:     sm.input.StartDate,
		Assignments:   []*model.Assignment{},
		EmployeeHours: make(map[string]float64),
	}

	var totalHours float64
	var totalCost float64
	for _, e := range sm.input.Employees {
		for _, s := range sm.input.Shifts {
			if !cpmodel.SolutionBooleanValue(resp, sm.assign[pairKey{emp: e.ID, shift: s.ID}]) {
				continue
			}
			hours := float64(sm.durations[s.ID])
			result.Assignments = append(result.Assignments, &model.Assignment{
				EmployeeID:   e.ID,
				EmployeeName: e.Name,
				ShiftID:      s.ID,
				TemplateID:   s.TemplateID,
				Date:         s.Date,
				StartTime:    model.FormatHour(s.StartHour),
				EndTime:      model.FormatHour(s.EndHour),
				Hours:        int(sm.durations[s.ID]),
			})
			result.EmployeeHours[e.ID] += hours
			totalHours += hours
			totalCost += hours * e.HourlyRate
		}
	}
	result.TotalCost = totalCost

	result.Metrics = Metrics{
		TotalAssignments: len(result.Assignments),
		TotalHours:       totalHours,
		CoverageRate:     coverageRate(len(result.Assignments), len(sm.input.Shifts), len(sm.input.Employees)),
		OptimizationTime: elapsed.Seconds(),
		ObjectiveValue:   resp.GetObjectiveValue(),
	}
	if n := len(sm.input.Employees); n > 0 {
		result.Metrics.AvgHoursPerEmployee = totalHours / float64(n)
	}
	return result
}

// coverageRate 覆盖率 = 分配数 / (班次数 × 员工数)
func coverageRate(assignments, shifts, employees int) float64 {
	slots := shifts * employees
	if slots == 0 {
		return 0
	}
	return float64(assignments) / float64(slots)
}
