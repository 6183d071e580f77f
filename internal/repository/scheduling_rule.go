// Package repository 提供数据访问层
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/zhipai/zhipai/pkg/logger"
	"github.com/zhipai/zhipai/pkg/model"
)

// SchedulingRuleRepository 排班规则仓储
//
// 规则行的变体字段存放在 payload JSONB 中，按 rule_type 解析。
type SchedulingRuleRepository struct {
	db DB
}

// NewSchedulingRuleRepository 创建排班规则仓储
func NewSchedulingRuleRepository(db DB) *SchedulingRuleRepository {
	return &SchedulingRuleRepository{db: db}
}

// rulePayload payload 列的序列化形态
type rulePayload struct {
	Unavailable *model.UnavailableWindow `json:"unavailable,omitempty"`
	Preferred   *model.PreferredHours    `json:"preferred,omitempty"`
	Requires    *model.SkillRequirement  `json:"requires,omitempty"`
}

// Create 创建排班规则
func (r *SchedulingRuleRepository) Create(ctx context.Context, c *model.SchedulingConstraint) (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("排班规则校验失败: 类型 %s 缺少变体字段或优先级越界", c.Type)
	}

	payloadJSON, err := json.Marshal(rulePayload{
		Unavailable: c.Unavailable,
		Preferred:   c.Preferred,
		Requires:    c.Requires,
	})
	if err != nil {
		return "", fmt.Errorf("序列化规则失败: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO scheduling_rules (id, employee_id, rule_type, priority, payload, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
	`
	if _, err := r.db.ExecContext(ctx, query,
		id, c.EmployeeID, string(c.Type), c.Priority, payloadJSON); err != nil {
		return "", fmt.Errorf("创建排班规则失败: %w", err)
	}
	return id, nil
}

// ListActive 获取全部生效规则并转换为排班约束
//
// payload 解析失败的行跳过并告警，不让一条脏数据拖垮整次排班。
func (r *SchedulingRuleRepository) ListActive(ctx context.Context) ([]*model.SchedulingConstraint, error) {
	query := `
		SELECT id, employee_id, rule_type, priority, payload
		FROM scheduling_rules
		WHERE is_active = TRUE
		ORDER BY priority DESC, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询排班规则失败: %w", err)
	}
	defer rows.Close()

	var constraints []*model.SchedulingConstraint
	for rows.Next() {
		var id, employeeID, ruleType string
		var priority int
		var payloadJSON []byte
		if err := rows.Scan(&id, &employeeID, &ruleType, &priority, &payloadJSON); err != nil {
			return nil, fmt.Errorf("扫描排班规则失败: %w", err)
		}

		var payload rulePayload
		if err := json.Unmarshal(payloadJSON, &payload); err != nil {
			logger.Warn().Str("rule_id", id).Err(err).Msg("排班规则 payload 解析失败，跳过")
			continue
		}

		c := &model.SchedulingConstraint{
			EmployeeID:  employeeID,
			Type:        model.ConstraintType(ruleType),
			Priority:    priority,
			Unavailable: payload.Unavailable,
			Preferred:   payload.Preferred,
			Requires:    payload.Requires,
		}
		if !c.Valid() {
			logger.Warn().Str("rule_id", id).Str("type", ruleType).Msg("排班规则类型与变体不一致，跳过")
			continue
		}
		constraints = append(constraints, c)
	}
	return constraints, rows.Err()
}
