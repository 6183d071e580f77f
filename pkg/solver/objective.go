package solver

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/zhipai/zhipai/pkg/model"
)

// addObjective 构建最小化目标：人力成本 + 软约束惩罚
//
// 全部项保持整数：成本以美分计，公平性偏差用 |n·x_e − Σx| 技巧
// 避免除法，惩罚权重由配置给出。
func (sm *scheduleModel) addObjective() {
	obj := cpmodel.NewLinearExpr()
	sm.addLaborCost(obj)
	sm.addPreferencePenalty(obj)
	sm.addWeekendFairnessPenalty(obj)
	sm.addBalancePenalty(obj)
	sm.builder.Minimize(obj)
}

// addLaborCost 人力成本：Σ 指派 × 班次时长 × 小时工资（美分）
func (sm *scheduleModel) addLaborCost(obj *cpmodel.LinearExpr) {
	for _, e := range sm.input.Employees {
		rate := e.HourlyRateCents()
		for _, s := range sm.input.Shifts {
			obj.AddTerm(sm.assign[pairKey{emp: e.ID, shift: s.ID}], sm.durations[s.ID]*rate)
		}
	}
}

// addPreferencePenalty 偏好惩罚
//
// 对每条 preference 约束，目标员工被指派到偏好窗口之外的班次时
// 触发一个违反变量，权重为 优先级 × PreferenceWeight。
func (sm *scheduleModel) addPreferencePenalty(obj *cpmodel.LinearExpr) {
	for ci, c := range sm.input.Constraints {
		if c.Type != model.ConstraintPreference || c.Preferred == nil {
			continue
		}
		weight := int64(c.Priority) * sm.cfg.PreferenceWeight
		for _, e := range sm.input.Employees {
			if !c.TargetsEmployee(e.ID) {
				continue
			}
			for _, s := range sm.input.Shifts {
				if c.Preferred.Contains(s.StartHour, s.EndHour) {
					continue
				}
				viol := sm.builder.NewBoolVar().
					WithName(fmt.Sprintf("pref_viol_%d_%s_%s", ci, e.ID, s.ID))
				sm.builder.AddImplication(sm.assign[pairKey{emp: e.ID, shift: s.ID}], viol)
				obj.AddTerm(viol, weight)
			}
		}
	}
}

// addWeekendFairnessPenalty 周末公平性惩罚
//
// 令 n 为员工数，total 为全部周末指派数，最小化 Σ_e |n·count_e − total|，
// 偏差由辅助整型变量配合双向 ≥ 约束表达，全程整数无除法。
func (sm *scheduleModel) addWeekendFairnessPenalty(obj *cpmodel.LinearExpr) {
	var weekendIDs []string
	for _, s := range sm.input.Shifts {
		if s.IsWeekend() {
			weekendIDs = append(weekendIDs, s.ID)
		}
	}
	n := int64(len(sm.input.Employees))
	w := int64(len(weekendIDs))
	if n < 2 || w == 0 {
		return
	}

	total := cpmodel.NewLinearExpr()
	for _, e := range sm.input.Employees {
		for _, id := range weekendIDs {
			total.Add(sm.assign[pairKey{emp: e.ID, shift: id}])
		}
	}

	devDomain := cpmodel.NewDomain(0, n*w)
	for _, e := range sm.input.Employees {
		dev := sm.builder.NewIntVarFromDomain(devDomain).
			WithName(fmt.Sprintf("weekend_dev_%s", e.ID))

		scaled := cpmodel.NewLinearExpr()
		for _, id := range weekendIDs {
			scaled.AddTerm(sm.assign[pairKey{emp: e.ID, shift: id}], n)
		}

		// dev ≥ n·count_e − total 且 dev ≥ total − n·count_e
		diff := cpmodel.NewLinearExpr().Add(scaled).AddTerm(total, -1)
		sm.builder.AddGreaterOrEqual(dev, diff)
		neg := cpmodel.NewLinearExpr().Add(total).AddTerm(scaled, -1)
		sm.builder.AddGreaterOrEqual(dev, neg)

		obj.AddTerm(dev, sm.cfg.WeekendFairnessWeight)
	}
}

// addBalancePenalty 工时均衡惩罚，对工时变量套用同一偏差技巧
func (sm *scheduleModel) addBalancePenalty(obj *cpmodel.LinearExpr) {
	n := int64(len(sm.input.Employees))
	if n < 2 {
		return
	}

	weeks := sm.input.NumWeeks
	if weeks < 1 {
		weeks = 1
	}
	var maxHours int64
	total := cpmodel.NewLinearExpr()
	for _, e := range sm.input.Employees {
		total.Add(sm.hours[e.ID])
		if hi := int64(e.MaxHoursWeek * weeks); hi > maxHours {
			maxHours = hi
		}
	}

	devDomain := cpmodel.NewDomain(0, n*maxHours)
	for _, e := range sm.input.Employees {
		dev := sm.builder.NewIntVarFromDomain(devDomain).
			WithName(fmt.Sprintf("hours_dev_%s", e.ID))

		diff := cpmodel.NewLinearExpr().AddTerm(sm.hours[e.ID], n).AddTerm(total, -1)
		sm.builder.AddGreaterOrEqual(dev, diff)
		neg := cpmodel.NewLinearExpr().Add(total).AddTerm(sm.hours[e.ID], -n)
		sm.builder.AddGreaterOrEqual(dev, neg)

		obj.AddTerm(dev, sm.cfg.BalanceWeight)
	}
}
