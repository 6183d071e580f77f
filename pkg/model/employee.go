// Package model 定义排班优化引擎的核心数据模型
package model

// Employee 员工
// 每次优化运行时从持久化记录构建，优化器只读不改。
type Employee struct {
	ID           string  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Role         string  `json:"role" db:"role"`
	MinHoursWeek int     `json:"min_hours_week" db:"min_hours_week"`
	MaxHoursWeek int     `json:"max_hours_week" db:"max_hours_week"`
	HourlyRate   float64 `json:"hourly_rate" db:"hourly_rate"`

	Skills []string `json:"skills" db:"skills"`

	// Availability 按星期下标（0=周一 … 6=周日）给出的可用时段，
	// 每天的区间有序且互不重叠
	Availability map[int][]HourRange `json:"availability" db:"availability"`
}

// HasSkill 检查员工是否具备某技能
func (e *Employee) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// HasAllSkills 检查员工是否具备全部技能
func (e *Employee) HasAllSkills(skills []string) bool {
	for _, s := range skills {
		if !e.HasSkill(s) {
			return false
		}
	}
	return true
}

// AvailableFor 检查员工在指定星期是否有完整覆盖 [startHour, endHour) 的可用时段。
// 跨夜班次（endHour <= startHour）要求当天覆盖到 24 点且次日从 0 点起覆盖。
func (e *Employee) AvailableFor(weekday, startHour, endHour int) bool {
	if endHour > startHour {
		for _, r := range e.Availability[weekday] {
			if r.Covers(startHour, endHour) {
				return true
			}
		}
		return false
	}

	// 跨夜：当天 [start, 24) + 次日 [0, end)
	coversTail := false
	for _, r := range e.Availability[weekday] {
		if r.StartHour <= startHour && r.EndHour >= 23 {
			coversTail = true
			break
		}
	}
	if !coversTail {
		return false
	}
	if endHour == 0 {
		return true
	}
	next := (weekday + 1) % 7
	for _, r := range e.Availability[next] {
		if r.Covers(0, endHour) {
			return true
		}
	}
	return false
}

// HourlyRateCents 返回整数分表示的时薪，避免浮点漂移
func (e *Employee) HourlyRateCents() int64 {
	return int64(e.HourlyRate*100 + 0.5)
}
