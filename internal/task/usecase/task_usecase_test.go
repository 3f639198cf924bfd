package usecase

import (
	"sort"
	"testing"
	"time"

	"balanceflow-backend/internal/task/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	tasks  []*domain.Task
	nextID uint
}

func (f *fakeTaskRepo) Create(task *domain.Task) error {
	f.nextID++
	task.ID = f.nextID
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *fakeTaskRepo) FindByUserID(userID uint) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range f.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		switch {
		case out[i].DueDate == nil:
			return false
		case out[j].DueDate == nil:
			return true
		default:
			return out[i].DueDate.Before(*out[j].DueDate)
		}
	})
	return out, nil
}

func (f *fakeTaskRepo) FindByIDAndUser(id, userID uint) (*domain.Task, error) {
	for _, task := range f.tasks {
		if task.ID == id && task.UserID == userID {
			return task, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) Update(task *domain.Task) error {
	for i, existing := range f.tasks {
		if existing.ID == task.ID {
			f.tasks[i] = task
		}
	}
	return nil
}

func (f *fakeTaskRepo) ToggleStatus(id, userID uint) (int64, error) {
	for _, task := range f.tasks {
		if task.ID == id && task.UserID == userID {
			if task.Status == domain.TaskStatusPending {
				task.Status = domain.TaskStatusCompleted
			} else {
				task.Status = domain.TaskStatusPending
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeTaskRepo) DeleteByIDAndUser(id, userID uint) (int64, error) {
	for i, task := range f.tasks {
		if task.ID == id && task.UserID == userID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestAddTask_Defaults(t *testing.T) {
	t.Parallel()
	uc := NewTaskUsecase(&fakeTaskRepo{})

	task, err := uc.AddTask(1, &CreateTaskRequest{Title: "Pay rent", Category: "home"})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Nil(t, task.DueDate)
}

func TestAddTask_PriorityAndDueDate(t *testing.T) {
	t.Parallel()
	uc := NewTaskUsecase(&fakeTaskRepo{})

	due := "2026-09-01"
	task, err := uc.AddTask(1, &CreateTaskRequest{
		Title: "File taxes", Category: "admin", Priority: "high", DueDate: &due,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *task.DueDate)

	_, err = uc.AddTask(1, &CreateTaskRequest{Title: "x", Category: "admin", Priority: "urgent"})
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestGetTasks_SoonestFirst(t *testing.T) {
	t.Parallel()
	uc := NewTaskUsecase(&fakeTaskRepo{})

	later, sooner := "2026-10-01", "2026-09-01"
	_, err := uc.AddTask(1, &CreateTaskRequest{Title: "later", Category: "c", DueDate: &later})
	require.NoError(t, err)
	_, err = uc.AddTask(1, &CreateTaskRequest{Title: "sooner", Category: "c", DueDate: &sooner})
	require.NoError(t, err)

	tasks, err := uc.GetTasks(1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "sooner", tasks[0].Title)
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()
	uc := NewTaskUsecase(&fakeTaskRepo{})

	due := "2026-09-01"
	created, err := uc.AddTask(1, &CreateTaskRequest{
		Title: "Plan trip", Category: "travel", DueDate: &due,
	})
	require.NoError(t, err)

	// Empty due_date clears the deadline.
	empty := ""
	low := "low"
	updated, err := uc.UpdateTask(1, created.ID, &UpdateTaskRequest{
		DueDate:  &empty,
		Priority: &low,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
	assert.Equal(t, domain.PriorityLow, updated.Priority)

	bad := "asap"
	_, err = uc.UpdateTask(1, created.ID, &UpdateTaskRequest{Priority: &bad})
	assert.ErrorIs(t, err, ErrInvalidPriority)

	title := "hijacked"
	_, err = uc.UpdateTask(2, created.ID, &UpdateTaskRequest{Title: &title})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestToggleTaskStatus(t *testing.T) {
	t.Parallel()
	repo := &fakeTaskRepo{}
	uc := NewTaskUsecase(repo)

	created, err := uc.AddTask(1, &CreateTaskRequest{Title: "Pay rent", Category: "home"})
	require.NoError(t, err)

	require.NoError(t, uc.ToggleTaskStatus(1, created.ID))
	assert.Equal(t, domain.TaskStatusCompleted, repo.tasks[0].Status)

	require.NoError(t, uc.ToggleTaskStatus(1, created.ID))
	assert.Equal(t, domain.TaskStatusPending, repo.tasks[0].Status)

	assert.ErrorIs(t, uc.ToggleTaskStatus(2, created.ID), ErrTaskNotFound)
	assert.ErrorIs(t, uc.ToggleTaskStatus(1, 999), ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	uc := NewTaskUsecase(&fakeTaskRepo{})

	created, err := uc.AddTask(1, &CreateTaskRequest{Title: "Pay rent", Category: "home"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteTask(2, created.ID), ErrTaskNotFound)
	assert.NoError(t, uc.DeleteTask(1, created.ID))
	assert.ErrorIs(t, uc.DeleteTask(1, created.ID), ErrTaskNotFound)
}
