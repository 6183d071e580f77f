package solver

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// addHardConstraints 按固定顺序添加全部硬约束
//
// 周工时上下限由工时变量的取值域承担（见 addVariables）。
// 约束冲突导致无解不是错误，由求解状态向上反映。
func (sm *scheduleModel) addHardConstraints() {
	sm.addStaffingBounds()
	sm.addAvailability()
	sm.addOnePerDay()
	sm.addQualification()
	sm.addRestWindows()
}

// addStaffingBounds 每个班次的人数必须落在 [MinStaff, MaxStaff]
func (sm *scheduleModel) addStaffingBounds() {
	for _, s := range sm.input.Shifts {
		staffed := cpmodel.NewLinearExpr()
		for _, e := range sm.input.Employees {
			staffed.Add(sm.assign[pairKey{emp: e.ID, shift: s.ID}])
		}
		sm.builder.AddLessOrEqual(cpmodel.NewConstant(int64(s.MinStaff)), staffed)
		sm.builder.AddLessOrEqual(staffed, cpmodel.NewConstant(int64(s.MaxStaff)))
	}
}

// addAvailability 员工不可用的班次强制不指派
func (sm *scheduleModel) addAvailability() {
	for _, e := range sm.input.Employees {
		for _, s := range sm.input.Shifts {
			if !availableFor(e, s, sm.input.Constraints) {
				sm.forceFalse(e, s)
			}
		}
	}
}

// addOnePerDay 每位员工每天最多一个班次
func (sm *scheduleModel) addOnePerDay() {
	byDay := make(map[int][]string)
	for _, s := range sm.input.Shifts {
		byDay[s.Day] = append(byDay[s.Day], s.ID)
	}
	for _, e := range sm.input.Employees {
		for _, shiftIDs := range byDay {
			if len(shiftIDs) < 2 {
				continue
			}
			vars := make([]cpmodel.BoolVar, 0, len(shiftIDs))
			for _, id := range shiftIDs {
				vars = append(vars, sm.assign[pairKey{emp: e.ID, shift: id}])
			}
			sm.builder.AddAtMostOne(vars...)
		}
	}
}

// addQualification 角色或技能不满足的组合强制不指派
func (sm *scheduleModel) addQualification() {
	for _, e := range sm.input.Employees {
		for _, s := range sm.input.Shifts {
			if !qualifiedFor(e, s, sm.input.Constraints) {
				sm.forceFalse(e, s)
			}
		}
	}
}

// addRestWindows 跨天班次对之间保证最小休息时间
//
// 对同一员工，凡休息间隔不足 MinRestHours 的班次对最多指派其一。
// 间隔按绝对小时轴计算，跨夜班次的收尾自然顺延到次日。
func (sm *scheduleModel) addRestWindows() {
	shifts := sm.input.Shifts
	for i := 0; i < len(shifts); i++ {
		for j := 0; j < len(shifts); j++ {
			a, b := shifts[i], shifts[j]
			if b.Day <= a.Day {
				continue
			}
			gap := restGap(a, b)
			if gap >= sm.cfg.MinRestHours {
				continue
			}
			for _, e := range sm.input.Employees {
				sm.builder.AddAtMostOne(
					sm.assign[pairKey{emp: e.ID, shift: a.ID}],
					sm.assign[pairKey{emp: e.ID, shift: b.ID}],
				)
			}
		}
	}
}
