// Package repository 提供数据访问层
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/zhipai/zhipai/pkg/model"
)

// EmployeeRepository 员工仓储
type EmployeeRepository struct {
	db DB
}

// NewEmployeeRepository 创建员工仓储
func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create 创建员工
func (r *EmployeeRepository) Create(ctx context.Context, emp *model.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	availJSON, err := json.Marshal(emp.Availability)
	if err != nil {
		return fmt.Errorf("序列化可用时段失败: %w", err)
	}

	query := `
		INSERT INTO employees (
			id, name, role, min_hours_week, max_hours_week,
			hourly_rate, skills, availability, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
	`
	_, err = r.db.ExecContext(ctx, query,
		emp.ID, emp.Name, emp.Role, emp.MinHoursWeek, emp.MaxHoursWeek,
		emp.HourlyRate, pq.Array(emp.Skills), availJSON,
	)
	if err != nil {
		return fmt.Errorf("创建员工失败: %w", err)
	}
	return nil
}

// GetByID 根据ID获取员工
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	query := `
		SELECT id, name, role, min_hours_week, max_hours_week,
			hourly_rate, skills, availability
		FROM employees
		WHERE id = $1
	`
	emp, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return emp, err
}

// ListActive 获取全部在职员工
func (r *EmployeeRepository) ListActive(ctx context.Context) ([]*model.Employee, error) {
	query := `
		SELECT id, name, role, min_hours_week, max_hours_week,
			hourly_rate, skills, availability
		FROM employees
		WHERE is_active = TRUE
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询员工列表失败: %w", err)
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Deactivate 停用员工
func (r *EmployeeRepository) Deactivate(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE employees SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("停用员工失败: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("员工不存在")
	}
	return nil
}

// scanEmployee 扫描员工行
func scanEmployee(row Scanner) (*model.Employee, error) {
	emp := &model.Employee{}
	var availJSON []byte

	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Role, &emp.MinHoursWeek, &emp.MaxHoursWeek,
		&emp.HourlyRate, pq.Array(&emp.Skills), &availJSON,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("扫描员工数据失败: %w", err)
	}

	if len(availJSON) > 0 {
		if err := json.Unmarshal(availJSON, &emp.Availability); err != nil {
			return nil, fmt.Errorf("解析可用时段失败: %w", err)
		}
	}
	return emp, nil
}
