package solver

import (
	"github.com/zhipai/zhipai/pkg/model"
)

// 可行性判定由 CP 约束与启发式降级共用，保证两条路径语义一致。

// availableFor 检查员工在班次时段内是否可用
//
// 先看员工自身的可用时段表，再看定向到该员工的 availability 约束；
// 跨夜班次拆成当天与次日两段分别核对不可用窗口。
func availableFor(e *model.Employee, s *model.Shift, rules []*model.SchedulingConstraint) bool {
	if !e.AvailableFor(s.Weekday(), s.StartHour, s.EndHour) {
		return false
	}
	for _, r := range rules {
		if r.Type != model.ConstraintAvailability || r.Unavailable == nil {
			continue
		}
		if !r.TargetsEmployee(e.ID) {
			continue
		}
		if windowHitsShift(r.Unavailable, s) {
			return false
		}
	}
	return true
}

// windowHitsShift 检查不可用窗口是否与班次相交
func windowHitsShift(w *model.UnavailableWindow, s *model.Shift) bool {
	if !s.IsOvernight() {
		return w.Matches(s.Weekday(), s.StartHour, s.EndHour)
	}
	if w.Matches(s.Weekday(), s.StartHour, 24) {
		return true
	}
	if s.EndHour == 0 {
		return false
	}
	return w.Matches((s.Weekday()+1)%7, 0, s.EndHour)
}

// qualifiedFor 检查员工是否满足班次的角色与技能要求
//
// requirement 类型约束视为员工的附加资质门槛：
// 定向到该员工的要求必须全部满足才允许任何指派。
func qualifiedFor(e *model.Employee, s *model.Shift, rules []*model.SchedulingConstraint) bool {
	if s.RequiredRole != "" && e.Role != s.RequiredRole {
		return false
	}
	if !e.HasAllSkills(s.RequiredSkills) {
		return false
	}
	for _, r := range rules {
		if r.Type != model.ConstraintRequirement || r.Requires == nil {
			continue
		}
		if !r.TargetsEmployee(e.ID) {
			continue
		}
		if !e.HasAllSkills(r.Requires.Skills) {
			return false
		}
	}
	return true
}

// restGap 返回两个班次之间的休息小时数
//
// 以排班窗口内的绝对小时轴计算，跨夜班次的结束时刻落在次日。
// 负值表示时段重叠。
func restGap(a, b *model.Shift) int {
	aEnd := a.Day*24 + a.StartHour + a.DurationHours()
	bStart := b.Day*24 + b.StartHour
	return bStart - aEnd
}
