// Package repository 提供数据访问层
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/zhipai/zhipai/pkg/model"
)

// ShiftTemplateRepository 班次模板仓储
type ShiftTemplateRepository struct {
	db DB
}

// NewShiftTemplateRepository 创建班次模板仓储
func NewShiftTemplateRepository(db DB) *ShiftTemplateRepository {
	return &ShiftTemplateRepository{db: db}
}

// Create 创建班次模板
func (r *ShiftTemplateRepository) Create(ctx context.Context, tpl *model.ShiftTemplate) error {
	if tpl.ID == "" {
		tpl.ID = uuid.New().String()
	}
	if tpl.Kind == "" {
		tpl.Kind = model.KindForStartHour(tpl.StartHour)
	}

	query := `
		INSERT INTO shift_templates (
			id, name, kind, start_hour, end_hour,
			required_role, required_skills, min_staff, max_staff, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
	`
	_, err := r.db.ExecContext(ctx, query,
		tpl.ID, tpl.Name, string(tpl.Kind), tpl.StartHour, tpl.EndHour,
		tpl.RequiredRole, pq.Array(tpl.RequiredSkills), tpl.MinStaff, tpl.MaxStaff,
	)
	if err != nil {
		return fmt.Errorf("创建班次模板失败: %w", err)
	}
	return nil
}

// GetByID 根据ID获取班次模板
func (r *ShiftTemplateRepository) GetByID(ctx context.Context, id string) (*model.ShiftTemplate, error) {
	query := `
		SELECT id, name, kind, start_hour, end_hour,
			required_role, required_skills, min_staff, max_staff, is_active
		FROM shift_templates
		WHERE id = $1
	`
	tpl, err := scanShiftTemplate(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return tpl, err
}

// ListActive 获取全部启用的班次模板
func (r *ShiftTemplateRepository) ListActive(ctx context.Context) ([]*model.ShiftTemplate, error) {
	query := `
		SELECT id, name, kind, start_hour, end_hour,
			required_role, required_skills, min_staff, max_staff, is_active
		FROM shift_templates
		WHERE is_active = TRUE
		ORDER BY start_hour, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询班次模板失败: %w", err)
	}
	defer rows.Close()

	var templates []*model.ShiftTemplate
	for rows.Next() {
		tpl, err := scanShiftTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, rows.Err()
}

// scanShiftTemplate 扫描班次模板行
func scanShiftTemplate(row Scanner) (*model.ShiftTemplate, error) {
	tpl := &model.ShiftTemplate{}
	var kind string

	err := row.Scan(
		&tpl.ID, &tpl.Name, &kind, &tpl.StartHour, &tpl.EndHour,
		&tpl.RequiredRole, pq.Array(&tpl.RequiredSkills), &tpl.MinStaff, &tpl.MaxStaff, &tpl.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("扫描班次模板失败: %w", err)
	}
	tpl.Kind = model.ShiftKind(kind)
	return tpl, nil
}
