// Package repository 提供数据访问层
package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhipai/zhipai/pkg/model"
)

// ScheduleRunRepository 排班运行记录仓储
type ScheduleRunRepository struct {
	db DB
}

// NewScheduleRunRepository 创建排班运行记录仓储
func NewScheduleRunRepository(db DB) *ScheduleRunRepository {
	return &ScheduleRunRepository{db: db}
}

// Create 创建运行记录
func (r *ScheduleRunRepository) Create(ctx context.Context, run *model.ScheduleRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.GeneratedAt.IsZero() {
		run.GeneratedAt = time.Now()
	}

	query := `
		INSERT INTO schedule_runs (
			id, start_date, end_date, status, total_slots, filled_slots, fill_rate, generated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.StartDate, run.EndDate, run.Status,
		run.TotalSlots, run.FilledSlots, run.FillRate, run.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("创建排班记录失败: %w", err)
	}
	return nil
}

// Update 更新运行记录的结果字段
func (r *ScheduleRunRepository) Update(ctx context.Context, run *model.ScheduleRun) error {
	query := `
		UPDATE schedule_runs
		SET status = $2, total_slots = $3, filled_slots = $4, fill_rate = $5
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		run.ID, run.Status, run.TotalSlots, run.FilledSlots, run.FillRate)
	if err != nil {
		return fmt.Errorf("更新排班记录失败: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("排班记录不存在")
	}
	return nil
}

// ListByIDs 根据ID列表获取运行记录
func (r *ScheduleRunRepository) ListByIDs(ctx context.Context, ids []string) ([]*model.ScheduleRun, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
			status, total_slots, filled_slots, fill_rate, generated_at
		FROM schedule_runs
		WHERE id IN (%s)
		ORDER BY start_date
	`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("查询排班记录失败: %w", err)
	}
	defer rows.Close()

	var runs []*model.ScheduleRun
	for rows.Next() {
		run := &model.ScheduleRun{}
		if err := rows.Scan(&run.ID, &run.StartDate, &run.EndDate, &run.Status,
			&run.TotalSlots, &run.FilledSlots, &run.FillRate, &run.GeneratedAt); err != nil {
			return nil, fmt.Errorf("扫描排班记录失败: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
