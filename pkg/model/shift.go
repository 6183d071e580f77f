// Package model 定义排班优化引擎的核心数据模型
package model

import (
	"fmt"
	"time"
)

// ShiftTemplate 班次模板（持久化的循环定义）
// 服务层将模板按日期范围展开为具体 Shift 实例。
type ShiftTemplate struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Kind           ShiftKind `json:"kind" db:"kind"`
	StartHour      int       `json:"start_hour" db:"start_hour"`
	EndHour        int       `json:"end_hour" db:"end_hour"`
	RequiredRole   string    `json:"required_role,omitempty" db:"required_role"`
	RequiredSkills []string  `json:"required_skills,omitempty" db:"required_skills"`
	MinStaff       int       `json:"min_staff" db:"min_staff"`
	MaxStaff       int       `json:"max_staff" db:"max_staff"`
	IsActive       bool      `json:"is_active" db:"is_active"`
}

// Instantiate 在指定日期生成班次实例
// day 为相对排班窗口起始日的偏移（0 起）。
func (t *ShiftTemplate) Instantiate(date string, day int) *Shift {
	return &Shift{
		ID:             fmt.Sprintf("%s_%s", t.ID, date),
		TemplateID:     t.ID,
		Name:           t.Name,
		Kind:           t.Kind,
		Date:           date,
		Day:            day,
		StartHour:      t.StartHour,
		EndHour:        t.EndHour,
		RequiredRole:   t.RequiredRole,
		RequiredSkills: t.RequiredSkills,
		MinStaff:       t.MinStaff,
		MaxStaff:       t.MaxStaff,
	}
}

// Shift 班次实例（一次优化运行内的具体排班槽位）
// EndHour <= StartHour 表示跨夜班次，时长按 (end-start) mod 24 计算。
type Shift struct {
	ID             string    `json:"id"`
	TemplateID     string    `json:"template_id,omitempty"`
	Name           string    `json:"name,omitempty"`
	Kind           ShiftKind `json:"kind,omitempty"`
	Date           string    `json:"date"`
	Day            int       `json:"day"`
	StartHour      int       `json:"start_hour"`
	EndHour        int       `json:"end_hour"`
	RequiredRole   string    `json:"required_role,omitempty"`
	RequiredSkills []string  `json:"required_skills,omitempty"`
	MinStaff       int       `json:"min_staff"`
	MaxStaff       int       `json:"max_staff"`
}

// DurationHours 返回班次时长（小时），跨夜自动回绕，0 视为整日 24 小时
func (s *Shift) DurationHours() int {
	d := ((s.EndHour-s.StartHour)%24 + 24) % 24
	if d == 0 {
		d = 24
	}
	return d
}

// IsOvernight 检查是否跨夜
func (s *Shift) IsOvernight() bool {
	return s.EndHour <= s.StartHour
}

// Weekday 返回班次日期的星期下标（0=周一 … 6=周日）
func (s *Shift) Weekday() int {
	t, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return s.Day % 7
	}
	return WeekdayIndex(t)
}

// IsWeekend 检查班次是否落在周末
func (s *Shift) IsWeekend() bool {
	return s.Weekday() >= 5
}

// Assignment 排班分配（优化结果输出，由服务层负责持久化）
type Assignment struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	ShiftID      string `json:"shift_id"`
	TemplateID   string `json:"template_id,omitempty"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Hours        int    `json:"hours"`
}
