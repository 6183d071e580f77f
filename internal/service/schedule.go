// Package service 实现排班编排服务
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/zhipai/zhipai/internal/metrics"
	"github.com/zhipai/zhipai/pkg/logger"
	"github.com/zhipai/zhipai/pkg/model"
	"github.com/zhipai/zhipai/pkg/solver"
	"github.com/zhipai/zhipai/pkg/stats"
	"github.com/zhipai/zhipai/pkg/validator"
)

// Store 服务层依赖的数据访问接口
type Store interface {
	FetchActiveEmployees(ctx context.Context) ([]*model.Employee, error)
	FetchActiveShiftTemplates(ctx context.Context) ([]*model.ShiftTemplate, error)
	FetchActiveRules(ctx context.Context) ([]*model.SchedulingConstraint, error)
	CreateScheduleRun(ctx context.Context, run *model.ScheduleRun) error
	UpdateScheduleRun(ctx context.Context, run *model.ScheduleRun) error
	ListSchedules(ctx context.Context, ids []string) ([]*model.ScheduleRun, error)
	PersistAssignment(ctx context.Context, scheduleID string, a *model.Assignment) (bool, error)
	ListAssignments(ctx context.Context, startDate, endDate string) ([]*model.PersistedAssignment, error)
}

// ScheduleOptimizer 排班优化器接口
type ScheduleOptimizer interface {
	GenerateSchedule(ctx context.Context, in *solver.Input) *solver.Result
}

// StatusError 服务边界失败的结果状态
//
// 求解失败不算 error：求解器内部已经用 fallback 状态兜底，
// error 只用于输入非法与数据访问失败。
const StatusError = "error"

// StatusSuperseded 重排后旧运行记录的状态
const StatusSuperseded = "superseded"

// GenerateResult 排班生成结果
type GenerateResult struct {
	ScheduleID  string  `json:"schedule_id,omitempty"`
	Status      string  `json:"status"` // optimal/feasible/fallback/error
	Message     string  `json:"message,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalSlots  int     `json:"total_slots"`
	FilledSlots int     `json:"filled_slots"`
	FillRate    float64 `json:"fill_rate"`
	CreatedRows int     `json:"created_rows"`

	Assignments   []*model.Assignment `json:"assignments"`
	EmployeeHours map[string]float64  `json:"employee_hours"`
	TotalCost     float64             `json:"total_cost"`
	Metrics       solver.Metrics      `json:"metrics"`
}

// ScheduleService 排班编排服务
type ScheduleService struct {
	store     Store
	optimizer ScheduleOptimizer
	detector  *validator.ConflictDetector
	coverage  *stats.CoverageAnalyzer
	metrics   *metrics.Metrics
}

// NewScheduleService 创建排班服务
func NewScheduleService(store Store, optimizer ScheduleOptimizer, m *metrics.Metrics) *ScheduleService {
	return &ScheduleService{
		store:     store,
		optimizer: optimizer,
		detector:  validator.NewConflictDetector(),
		coverage:  stats.NewCoverageAnalyzer(),
		metrics:   m,
	}
}

// GenerateSchedule 生成指定日期范围的排班
//
// 输入或数据访问失败返回 error 状态的结果；求解阶段的失败
// 由优化器内部降级兜底，不会以 error 形式出现在这里。
func (s *ScheduleService) GenerateSchedule(ctx context.Context, startDate, endDate string, extra []*model.SchedulingConstraint) *GenerateResult {
	begin := time.Now()
	log := logger.WithContext(ctx)

	dates := model.DateRange{StartDate: startDate, EndDate: endDate}.Days()
	if len(dates) == 0 {
		return s.errorResult(startDate, endDate, "日期范围非法：要求 YYYY-MM-DD 且结束不早于开始")
	}

	employees, err := s.store.FetchActiveEmployees(ctx)
	if err != nil {
		return s.errorResult(startDate, endDate, fmt.Sprintf("加载员工失败: %v", err))
	}
	templates, err := s.store.FetchActiveShiftTemplates(ctx)
	if err != nil {
		return s.errorResult(startDate, endDate, fmt.Sprintf("加载班次模板失败: %v", err))
	}
	if len(employees) == 0 {
		return s.errorResult(startDate, endDate, "没有在职员工，无法排班")
	}
	if len(templates) == 0 {
		return s.errorResult(startDate, endDate, "没有启用的班次模板，无法排班")
	}

	rules, err := s.store.FetchActiveRules(ctx)
	if err != nil {
		return s.errorResult(startDate, endDate, fmt.Sprintf("加载排班规则失败: %v", err))
	}
	constraints := append(rules, extra...)

	shifts := expandShifts(templates, dates)
	in := &solver.Input{
		Employees:   employees,
		Shifts:      shifts,
		Constraints: constraints,
		StartDate:   startDate,
		NumWeeks:    int(math.Ceil(float64(len(dates)) / 7.0)),
	}

	result := s.optimizer.GenerateSchedule(ctx, in)

	run := &model.ScheduleRun{
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      string(result.Status),
		GeneratedAt: time.Now(),
	}
	run.TotalSlots, run.FilledSlots = countSlots(shifts, result.Assignments)
	if run.TotalSlots > 0 {
		run.FillRate = float64(run.FilledSlots) / float64(run.TotalSlots)
	}
	if err := s.store.CreateScheduleRun(ctx, run); err != nil {
		return s.errorResult(startDate, endDate, fmt.Sprintf("保存排班记录失败: %v", err))
	}

	created := 0
	for _, a := range result.Assignments {
		wrote, err := s.store.PersistAssignment(ctx, run.ID, a)
		if err != nil {
			return s.errorResult(startDate, endDate, fmt.Sprintf("写入排班分配失败: %v", err))
		}
		if wrote {
			created++
		}
	}

	log.Info().
		Str("schedule_id", run.ID).
		Str("status", string(result.Status)).
		Int("assignments", len(result.Assignments)).
		Int("created_rows", created).
		Float64("fill_rate", run.FillRate).
		Msg("排班生成完成")

	s.metrics.ObserveGeneration(string(result.Status), time.Since(begin),
		time.Duration(result.Metrics.OptimizationTime*float64(time.Second)), run.FillRate)

	return &GenerateResult{
		ScheduleID:    run.ID,
		Status:        string(result.Status),
		StartDate:     startDate,
		EndDate:       endDate,
		TotalSlots:    run.TotalSlots,
		FilledSlots:   run.FilledSlots,
		FillRate:      run.FillRate,
		CreatedRows:   created,
		Assignments:   result.Assignments,
		EmployeeHours: result.EmployeeHours,
		TotalCost:     result.TotalCost,
		Metrics:       result.Metrics,
	}
}

// errorResult 组装 error 状态的结果并记录指标
func (s *ScheduleService) errorResult(startDate, endDate, message string) *GenerateResult {
	logger.Warn().Str("start_date", startDate).Str("end_date", endDate).Msg(message)
	s.metrics.ObserveGeneration(StatusError, 0, 0, 0)
	return &GenerateResult{
		Status:        StatusError,
		Message:       message,
		StartDate:     startDate,
		EndDate:       endDate,
		Assignments:   []*model.Assignment{},
		EmployeeHours: map[string]float64{},
	}
}

// expandShifts 模板×日期展开为班次实例
func expandShifts(templates []*model.ShiftTemplate, dates []string) []*model.Shift {
	shifts := make([]*model.Shift, 0, len(templates)*len(dates))
	for day, date := range dates {
		for _, tpl := range templates {
			shifts = append(shifts, tpl.Instantiate(date, day))
		}
	}
	return shifts
}

// countSlots 统计槽位总量与实际填充量（单班次封顶 MinStaff）
func countSlots(shifts []*model.Shift, assignments []*model.Assignment) (total, filled int) {
	byShift := make(map[string]int)
	for _, a := range assignments {
		byShift[a.ShiftID]++
	}
	for _, s := range shifts {
		total += s.MinStaff
		n := byShift[s.ID]
		if n > s.MinStaff {
			n = s.MinStaff
		}
		filled += n
	}
	return total, filled
}
