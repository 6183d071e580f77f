// Package validator 提供排班验证功能
package validator

import (
	"fmt"
	"sort"

	"github.com/zhipai/zhipai/pkg/model"
)

// ConflictType 冲突类型
type ConflictType string

const (
	ConflictDoubleBooking ConflictType = "double_booking"         // 同一员工同日多个班次
	ConflictQualification ConflictType = "qualification_mismatch" // 资质不满足班次要求
)

// Conflict 冲突信息
type Conflict struct {
	Type          ConflictType `json:"type"`
	Severity      string       `json:"severity"` // error/warning
	EmployeeID    string       `json:"employee_id"`
	Date          string       `json:"date"`
	Message       string       `json:"message"`
	AssignmentIDs []string     `json:"assignment_ids,omitempty"`
}

// ConflictDetector 冲突检测器
//
// 只做事后校验：针对已落库的分配行报告问题，不做任何修复。
type ConflictDetector struct{}

// NewConflictDetector 创建冲突检测器
func NewConflictDetector() *ConflictDetector {
	return &ConflictDetector{}
}

// DetectAll 检测全部冲突
func (d *ConflictDetector) DetectAll(
	assignments []*model.PersistedAssignment,
	employees map[string]*model.Employee,
	templates map[string]*model.ShiftTemplate,
) []Conflict {
	var conflicts []Conflict
	conflicts = append(conflicts, d.detectDoubleBookings(assignments, employees)...)
	conflicts = append(conflicts, d.detectQualificationMismatches(assignments, employees, templates)...)
	return conflicts
}

// detectDoubleBookings 检测同一员工同日的重复排班
func (d *ConflictDetector) detectDoubleBookings(
	assignments []*model.PersistedAssignment,
	employees map[string]*model.Employee,
) []Conflict {
	type dayKey struct {
		employee string
		date     string
	}
	byDay := make(map[dayKey][]*model.PersistedAssignment)
	for _, a := range assignments {
		key := dayKey{employee: a.EmployeeID, date: a.Date}
		byDay[key] = append(byDay[key], a)
	}

	var conflicts []Conflict
	for key, rows := range byDay {
		if len(rows) < 2 {
			continue
		}
		name := key.employee
		if e, ok := employees[key.employee]; ok {
			name = e.Name
		}
		ids := make([]string, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.ID)
		}
		sort.Strings(ids)
		conflicts = append(conflicts, Conflict{
			Type:          ConflictDoubleBooking,
			Severity:      "error",
			EmployeeID:    key.employee,
			Date:          key.date,
			Message:       fmt.Sprintf("员工 %s 在 %s 被指派了 %d 个班次", name, key.date, len(rows)),
			AssignmentIDs: ids,
		})
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Date != conflicts[j].Date {
			return conflicts[i].Date < conflicts[j].Date
		}
		return conflicts[i].EmployeeID < conflicts[j].EmployeeID
	})
	return conflicts
}

// detectQualificationMismatches 检测资质不满足的分配
func (d *ConflictDetector) detectQualificationMismatches(
	assignments []*model.PersistedAssignment,
	employees map[string]*model.Employee,
	templates map[string]*model.ShiftTemplate,
) []Conflict {
	var conflicts []Conflict
	for _, a := range assignments {
		emp, ok := employees[a.EmployeeID]
		if !ok {
			continue
		}
		tpl, ok := templates[a.TemplateID]
		if !ok {
			continue
		}

		if tpl.RequiredRole != "" && emp.Role != tpl.RequiredRole {
			conflicts = append(conflicts, Conflict{
				Type:          ConflictQualification,
				Severity:      "error",
				EmployeeID:    a.EmployeeID,
				Date:          a.Date,
				Message:       fmt.Sprintf("员工 %s 角色 %s 不满足班次 %s 要求的 %s", emp.Name, emp.Role, tpl.Name, tpl.RequiredRole),
				AssignmentIDs: []string{a.ID},
			})
			continue
		}

		for _, skill := range tpl.RequiredSkills {
			if !emp.HasSkill(skill) {
				conflicts = append(conflicts, Conflict{
					Type:          ConflictQualification,
					Severity:      "error",
					EmployeeID:    a.EmployeeID,
					Date:          a.Date,
					Message:       fmt.Sprintf("员工 %s 缺少班次 %s 要求的技能 %s", emp.Name, tpl.Name, skill),
					AssignmentIDs: []string{a.ID},
				})
				break
			}
		}
	}
	return conflicts
}
