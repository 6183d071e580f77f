// Package repository 提供数据访问层
package repository

import (
	"context"

	"github.com/zhipai/zhipai/pkg/model"
)

// Store 聚合仓储，服务层的唯一数据入口
type Store struct {
	employees *EmployeeRepository
	templates *ShiftTemplateRepository
	rules     *SchedulingRuleRepository
	runs      *ScheduleRunRepository
	rows      *AssignmentRepository
}

// NewStore 创建聚合仓储
func NewStore(db DB) *Store {
	return &Store{
		employees: NewEmployeeRepository(db),
		templates: NewShiftTemplateRepository(db),
		rules:     NewSchedulingRuleRepository(db),
		runs:      NewScheduleRunRepository(db),
		rows:      NewAssignmentRepository(db),
	}
}

// FetchActiveEmployees 获取在职员工
func (s *Store) FetchActiveEmployees(ctx context.Context) ([]*model.Employee, error) {
	return s.employees.ListActive(ctx)
}

// FetchActiveShiftTemplates 获取启用的班次模板
func (s *Store) FetchActiveShiftTemplates(ctx context.Context) ([]*model.ShiftTemplate, error) {
	return s.templates.ListActive(ctx)
}

// FetchActiveRules 获取生效的排班约束
func (s *Store) FetchActiveRules(ctx context.Context) ([]*model.SchedulingConstraint, error) {
	return s.rules.ListActive(ctx)
}

// CreateScheduleRun 创建排班运行记录
func (s *Store) CreateScheduleRun(ctx context.Context, run *model.ScheduleRun) error {
	return s.runs.Create(ctx, run)
}

// UpdateScheduleRun 更新排班运行记录
func (s *Store) UpdateScheduleRun(ctx context.Context, run *model.ScheduleRun) error {
	return s.runs.Update(ctx, run)
}

// ListSchedules 按ID获取排班运行记录
func (s *Store) ListSchedules(ctx context.Context, ids []string) ([]*model.ScheduleRun, error) {
	return s.runs.ListByIDs(ctx, ids)
}

// PersistAssignment 幂等写入分配行
func (s *Store) PersistAssignment(ctx context.Context, scheduleID string, a *model.Assignment) (bool, error) {
	return s.rows.Persist(ctx, scheduleID, a)
}

// ListAssignments 查询日期范围内的分配行
func (s *Store) ListAssignments(ctx context.Context, startDate, endDate string) ([]*model.PersistedAssignment, error) {
	return s.rows.ListByDateRange(ctx, startDate, endDate)
}

// Employees 员工仓储
func (s *Store) Employees() *EmployeeRepository { return s.employees }

// Templates 班次模板仓储
func (s *Store) Templates() *ShiftTemplateRepository { return s.templates }

// Rules 排班规则仓储
func (s *Store) Rules() *SchedulingRuleRepository { return s.rules }
