package handlers

import (
	"context"
	"sync"

	"finance-tracker/api/models"
	"finance-tracker/api/mongodb"
)

// memStore is an in-memory Store used by the handler tests. It mirrors the
// Mongo adapter's semantics: exact-match filters, matched/deleted counts,
// (nil, nil) for missing documents, and the unique budget key.
type memStore struct {
	mu       sync.Mutex
	users    []models.User
	incomes  []models.Income
	expenses []models.Expense
	budgets  []models.Budget
	goals    []models.SavingsGoal
	messages []models.ContactMessage
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) InsertUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return mongodb.ErrDuplicateKey
		}
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) InsertIncome(_ context.Context, income *models.Income) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incomes = append(m.incomes, *income)
	return nil
}

func (m *memStore) ListIncomes(_ context.Context, userID string) ([]models.Income, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	incomes := []models.Income{}
	for _, i := range m.incomes {
		if i.UserID == userID {
			incomes = append(incomes, i)
		}
	}
	return incomes, nil
}

func (m *memStore) DeleteIncome(_ context.Context, id, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for idx, i := range m.incomes {
		if i.ID == id && i.UserID == userID {
			m.incomes = append(m.incomes[:idx], m.incomes[idx+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) InsertExpense(_ context.Context, expense *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses = append(m.expenses, *expense)
	return nil
}

func (m *memStore) ListExpenses(_ context.Context, userID string) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	expenses := []models.Expense{}
	for _, e := range m.expenses {
		if e.UserID == userID {
			expenses = append(expenses, e)
		}
	}
	return expenses, nil
}

func (m *memStore) DeleteExpense(_ context.Context, id, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for idx, e := range m.expenses {
		if e.ID == id && e.UserID == userID {
			m.expenses = append(m.expenses[:idx], m.expenses[idx+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) InsertBudget(_ context.Context, budget *models.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.budgets {
		if b.UserID == budget.UserID && b.Category == budget.Category &&
			b.Year == budget.Year && b.Month == budget.Month {
			return mongodb.ErrDuplicateKey
		}
	}
	m.budgets = append(m.budgets, *budget)
	return nil
}

func (m *memStore) FindBudgetByKey(_ context.Context, userID, category string, year, month int) (*models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.budgets {
		if b.UserID == userID && b.Category == category && b.Year == year && b.Month == month {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindBudgetByID(_ context.Context, id, userID string) (*models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.budgets {
		if b.ID == id && b.UserID == userID {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListBudgets(_ context.Context, userID string, year, month int) ([]models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	budgets := []models.Budget{}
	for _, b := range m.budgets {
		if b.UserID != userID {
			continue
		}
		if year != 0 && b.Year != year {
			continue
		}
		if month != 0 && b.Month != month {
			continue
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

func (m *memStore) UpdateBudget(_ context.Context, id, userID string, budget *models.Budget) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for idx, b := range m.budgets {
		if b.ID != id || b.UserID != userID {
			continue
		}
		// The replacement must not land on another budget's unique key.
		for _, other := range m.budgets {
			if other.ID != id && other.UserID == userID && other.Category == budget.Category &&
				other.Year == budget.Year && other.Month == budget.Month {
				return 0, mongodb.ErrDuplicateKey
			}
		}
		m.budgets[idx].Category = budget.Category
		m.budgets[idx].MonthlyLimit = budget.MonthlyLimit
		m.budgets[idx].Year = budget.Year
		m.budgets[idx].Month = budget.Month
		return 1, nil
	}
	return 0, nil
}

func (m *memStore) DeleteBudget(_ context.Context, id, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for idx, b := range m.budgets {
		if b.ID == id && b.UserID == userID {
			m.budgets = append(m.budgets[:idx], m.budgets[idx+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) InsertSavingsGoal(_ context.Context, goal *models.SavingsGoal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goals = append(m.goals, *goal)
	return nil
}

func (m *memStore) ListSavingsGoals(_ context.Context, userID string) ([]models.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	goals := []models.SavingsGoal{}
	for _, g := range m.goals {
		if g.UserID == userID {
			goals = append(goals, g)
		}
	}
	return goals, nil
}

func (m *memStore) FindSavingsGoalByID(_ context.Context, id, userID string) (*models.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.goals {
		if g.ID == id && g.UserID == userID {
			found := g
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) UpdateSavingsGoalAmount(_ context.Context, id, userID string, currentAmount float64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for idx, g := range m.goals {
		if g.ID == id && g.UserID == userID {
			m.goals[idx].CurrentAmount = currentAmount
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteSavingsGoal(_ context.Context, id, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for idx, g := range m.goals {
		if g.ID == id && g.UserID == userID {
			m.goals = append(m.goals[:idx], m.goals[idx+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) InsertContactMessage(_ context.Context, msg *models.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, *msg)
	return nil
}
