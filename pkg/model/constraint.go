// Package model 定义排班优化引擎的核心数据模型
package model

// ConstraintType 排班约束类型
type ConstraintType string

const (
	ConstraintAvailability ConstraintType = "availability" // 不可用时段（硬排除）
	ConstraintPreference   ConstraintType = "preference"   // 偏好时段（软约束）
	ConstraintRequirement  ConstraintType = "requirement"  // 资质要求（硬约束）
)

// UnavailableWindow 不可用窗口
// Day 为空表示每天生效，小时为空表示整天。
type UnavailableWindow struct {
	Day       *int `json:"day,omitempty"`
	StartHour *int `json:"start_hour,omitempty"`
	EndHour   *int `json:"end_hour,omitempty"`
}

// Matches 检查某个星期下标 + 小时区间的班次是否落入窗口
func (w *UnavailableWindow) Matches(weekday, startHour, endHour int) bool {
	if w.Day != nil && *w.Day != weekday {
		return false
	}
	if w.StartHour == nil || w.EndHour == nil {
		return true
	}
	r := HourRange{StartHour: *w.StartHour, EndHour: *w.EndHour}
	return r.Overlaps(startHour, endHour)
}

// PreferredHours 偏好工作时段
type PreferredHours struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Contains 检查班次时段是否完全落在偏好窗口内
func (p *PreferredHours) Contains(startHour, endHour int) bool {
	return HourRange{StartHour: p.StartHour, EndHour: p.EndHour}.Covers(startHour, endHour)
}

// SkillRequirement 技能要求
type SkillRequirement struct {
	Skills []string `json:"skills"`
}

// SchedulingConstraint 排班约束
// 类型对应的变体字段有且仅有一个非空；EmployeeID 为空表示全局约束。
// Priority 1-10 仅对软约束（preference）生效，越大越重要。
type SchedulingConstraint struct {
	EmployeeID string         `json:"employee_id,omitempty"`
	Type       ConstraintType `json:"type"`
	Priority   int            `json:"priority"`

	Unavailable *UnavailableWindow `json:"unavailable,omitempty"`
	Preferred   *PreferredHours    `json:"preferred,omitempty"`
	Requires    *SkillRequirement  `json:"requires,omitempty"`
}

// TargetsEmployee 检查约束是否作用于指定员工
func (c *SchedulingConstraint) TargetsEmployee(employeeID string) bool {
	return c.EmployeeID == "" || c.EmployeeID == employeeID
}

// Valid 检查约束变体与类型是否一致
func (c *SchedulingConstraint) Valid() bool {
	switch c.Type {
	case ConstraintAvailability:
		return c.Unavailable != nil
	case ConstraintPreference:
		return c.Preferred != nil && c.Priority >= 1 && c.Priority <= 10
	case ConstraintRequirement:
		return c.Requires != nil
	default:
		return false
	}
}
