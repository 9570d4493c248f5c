package handlers

import (
	"net/http"
	"strings"
	"time"

	"finance-tracker/api/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardStats struct {
	TotalIncome         float64 `json:"total_income"`
	TotalExpenses       float64 `json:"total_expenses"`
	Balance             float64 `json:"balance"`
	MonthlyExpenses     float64 `json:"monthly_expenses"`
	TotalSavingsTarget  float64 `json:"total_savings_target"`
	TotalSavingsCurrent float64 `json:"total_savings_current"`
	SavingsGoalsCount   int     `json:"savings_goals_count"`
}

// DashboardStats reduces the caller's incomes, expenses and savings goals
// into one summary. "This month" means the expense's date string starts with
// the current UTC "YYYY-MM" — a plain prefix match on the stored string, the
// same way the collection has always been queried.
func (h *Handlers) DashboardStats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	incomes, err := h.store.ListIncomes(ctx, userID)
	if err != nil {
		logger.Get().Error("error fetching incomes for dashboard", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	expenses, err := h.store.ListExpenses(ctx, userID)
	if err != nil {
		logger.Get().Error("error fetching expenses for dashboard", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	goals, err := h.store.ListSavingsGoals(ctx, userID)
	if err != nil {
		logger.Get().Error("error fetching savings goals for dashboard", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	stats := DashboardStats{SavingsGoalsCount: len(goals)}

	for _, income := range incomes {
		stats.TotalIncome += income.Amount
	}

	monthPrefix := time.Now().UTC().Format("2006-01")
	for _, expense := range expenses {
		stats.TotalExpenses += expense.Amount
		if strings.HasPrefix(expense.Date, monthPrefix) {
			stats.MonthlyExpenses += expense.Amount
		}
	}
	stats.Balance = stats.TotalIncome - stats.TotalExpenses

	for _, goal := range goals {
		stats.TotalSavingsTarget += goal.TargetAmount
		stats.TotalSavingsCurrent += goal.CurrentAmount
	}

	c.JSON(http.StatusOK, stats)
}
