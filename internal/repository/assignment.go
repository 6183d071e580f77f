// Package repository 提供数据访问层
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zhipai/zhipai/pkg/model"
)

// AssignmentRepository 排班分配仓储
type AssignmentRepository struct {
	db DB
}

// NewAssignmentRepository 创建排班分配仓储
func NewAssignmentRepository(db DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Persist 幂等写入一条分配
//
// (employee_id, shift_template_id, date) 上的唯一约束配合
// ON CONFLICT DO NOTHING，重复写入不报错也不产生新行；
// 返回值指示本次调用是否真正落库。
func (r *AssignmentRepository) Persist(ctx context.Context, scheduleID string, a *model.Assignment) (bool, error) {
	query := `
		INSERT INTO schedule_assignments (
			id, schedule_id, employee_id, shift_template_id, date, start_hour, end_hour
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, shift_template_id, date) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query,
		uuid.New().String(), scheduleID, a.EmployeeID, a.TemplateID, a.Date,
		parseHour(a.StartTime), parseHour(a.EndTime),
	)
	if err != nil {
		return false, fmt.Errorf("写入排班分配失败: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("读取写入结果失败: %w", err)
	}
	return rows > 0, nil
}

// ListByDateRange 查询日期范围内的分配行（闭区间）
func (r *AssignmentRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]*model.PersistedAssignment, error) {
	query := `
		SELECT id, schedule_id, employee_id, shift_template_id,
			to_char(date, 'YYYY-MM-DD'), start_hour, end_hour
		FROM schedule_assignments
		WHERE date >= $1 AND date <= $2
		ORDER BY date, start_hour, employee_id
	`
	rows, err := r.db.QueryContext(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("查询排班分配失败: %w", err)
	}
	defer rows.Close()

	var assignments []*model.PersistedAssignment
	for rows.Next() {
		a := &model.PersistedAssignment{}
		if err := rows.Scan(&a.ID, &a.ScheduleID, &a.EmployeeID, &a.TemplateID,
			&a.Date, &a.StartHour, &a.EndHour); err != nil {
			return nil, fmt.Errorf("扫描排班分配失败: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// parseHour 从 HH:00 取回整点小时
func parseHour(t string) int {
	var h int
	fmt.Sscanf(t, "%d:", &h)
	return h
}
