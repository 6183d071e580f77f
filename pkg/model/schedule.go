// Package model 定义排班优化引擎的核心数据模型
package model

import "time"

// ScheduleRun 一次排班生成的容器记录
type ScheduleRun struct {
	ID          string    `json:"id" db:"id"`
	StartDate   string    `json:"start_date" db:"start_date"`
	EndDate     string    `json:"end_date" db:"end_date"`
	Status      string    `json:"status" db:"status"` // optimal/feasible/fallback/error
	TotalSlots  int       `json:"total_slots" db:"total_slots"`
	FilledSlots int       `json:"filled_slots" db:"filled_slots"`
	FillRate    float64   `json:"fill_rate" db:"fill_rate"`
	GeneratedAt time.Time `json:"generated_at" db:"generated_at"`
}

// PersistedAssignment 已落库的排班分配行
type PersistedAssignment struct {
	ID         string `json:"id" db:"id"`
	ScheduleID string `json:"schedule_id,omitempty" db:"schedule_id"`
	EmployeeID string `json:"employee_id" db:"employee_id"`
	TemplateID string `json:"shift_template_id" db:"shift_template_id"`
	Date       string `json:"date" db:"date"`
	StartHour  int    `json:"start_hour" db:"start_hour"`
	EndHour    int    `json:"end_hour" db:"end_hour"`
}

// DurationHours 返回分配时长（小时），跨夜回绕规则与 Shift 一致
func (a *PersistedAssignment) DurationHours() int {
	d := ((a.EndHour-a.StartHour)%24 + 24) % 24
	if d == 0 {
		d = 24
	}
	return d
}
