package usecase

import (
	"sort"
	"testing"

	"balanceflow-backend/internal/income/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIncomeRepo struct {
	incomes []*domain.Income
	nextID  uint
}

func (f *fakeIncomeRepo) Create(income *domain.Income) error {
	f.nextID++
	income.ID = f.nextID
	f.incomes = append(f.incomes, income)
	return nil
}

func (f *fakeIncomeRepo) FindByUserID(userID uint) ([]*domain.Income, error) {
	var out []*domain.Income
	for _, in := range f.incomes {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TransactionDate.After(out[j].TransactionDate)
	})
	return out, nil
}

func (f *fakeIncomeRepo) FindByIDAndUser(id, userID uint) (*domain.Income, error) {
	for _, in := range f.incomes {
		if in.ID == id && in.UserID == userID {
			return in, nil
		}
	}
	return nil, nil
}

func (f *fakeIncomeRepo) Update(income *domain.Income) error {
	for i, in := range f.incomes {
		if in.ID == income.ID {
			f.incomes[i] = income
		}
	}
	return nil
}

func (f *fakeIncomeRepo) DeleteByIDAndUser(id, userID uint) (int64, error) {
	for i, in := range f.incomes {
		if in.ID == id && in.UserID == userID {
			f.incomes = append(f.incomes[:i], f.incomes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestAddIncome(t *testing.T) {
	t.Parallel()
	uc := NewIncomeUsecase(&fakeIncomeRepo{})

	income, err := uc.AddIncome(1, &CreateIncomeRequest{
		Title: "Salary", Amount: 3000, Category: "salary", TransactionDate: "2026-08-01",
	})
	require.NoError(t, err)
	assert.NotZero(t, income.ID)
	assert.Equal(t, 3000.0, income.Amount)

	_, err = uc.AddIncome(1, &CreateIncomeRequest{
		Title: "x", Amount: -1, Category: "salary", TransactionDate: "2026-08-01",
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = uc.AddIncome(1, &CreateIncomeRequest{
		Title: "x", Amount: 1, Category: "salary", TransactionDate: "later",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUpdateIncome(t *testing.T) {
	t.Parallel()
	uc := NewIncomeUsecase(&fakeIncomeRepo{})

	created, err := uc.AddIncome(1, &CreateIncomeRequest{
		Title: "Salary", Amount: 3000, Category: "salary", TransactionDate: "2026-08-01",
	})
	require.NoError(t, err)

	amount := 3200.0
	updated, err := uc.UpdateIncome(1, created.ID, &UpdateIncomeRequest{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 3200.0, updated.Amount)
	assert.Equal(t, "Salary", updated.Title)

	title := "hijacked"
	_, err = uc.UpdateIncome(2, created.ID, &UpdateIncomeRequest{Title: &title})
	assert.ErrorIs(t, err, ErrIncomeNotFound)
}

func TestDeleteIncome(t *testing.T) {
	t.Parallel()
	uc := NewIncomeUsecase(&fakeIncomeRepo{})

	created, err := uc.AddIncome(1, &CreateIncomeRequest{
		Title: "Salary", Amount: 3000, Category: "salary", TransactionDate: "2026-08-01",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteIncome(2, created.ID), ErrIncomeNotFound)
	assert.NoError(t, uc.DeleteIncome(1, created.ID))

	incomes, err := uc.GetIncomes(1)
	require.NoError(t, err)
	assert.Empty(t, incomes)
}
