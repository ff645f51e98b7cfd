package dto

import (
	"time"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name          string           `json:"name" binding:"required,min=1"`
	Description   string           `json:"description"`
	TargetAmount  decimal.Decimal  `json:"targetAmount" binding:"required"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time       `json:"deadline"`
	Icon          string           `json:"icon"`
	Color         string           `json:"color"`
}

// UpdateGoalRequest defines a partial goal update.
type UpdateGoalRequest struct {
	Name          *string            `json:"name" binding:"omitempty,min=1"`
	Description   *string            `json:"description"`
	TargetAmount  *decimal.Decimal   `json:"targetAmount"`
	CurrentAmount *decimal.Decimal   `json:"currentAmount"`
	Deadline      *time.Time         `json:"deadline"`
	Status        *domain.GoalStatus `json:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED CANCELLED"`
	Icon          *string            `json:"icon"`
	Color         *string            `json:"color"`
}

// ListGoalsParams defines query parameters for listing goals.
type ListGoalsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED CANCELLED"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        string            `json:"goalID"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	TargetAmount  decimal.Decimal   `json:"targetAmount"`
	CurrentAmount decimal.Decimal   `json:"currentAmount"`
	Deadline      *time.Time        `json:"deadline,omitempty"`
	Status        domain.GoalStatus `json:"status"`
	Icon          string            `json:"icon"`
	Color         string            `json:"color"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// ListGoalsResponse wraps the list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain.Goal.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Status:        g.Status,
		Icon:          g.Icon,
		Color:         g.Color,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.LastUpdatedAt,
	}
}

// ToGoalResponses converts a slice of domain goals.
func ToGoalResponses(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}
