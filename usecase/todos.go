package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

const (
	maxTodoTags   = 5
	maxTagLength  = 20
	maxTodoLength = 500
)

type TodosService struct {
	TodosRepo *repository.TodosRepo
}

func NewTodosService(repo *repository.TodosRepo) *TodosService {
	return &TodosService{TodosRepo: repo}
}

var priorityRank = map[model.Priority]int{
	model.PriorityHigh:   0,
	model.PriorityMedium: 1,
	model.PriorityLow:    2,
}

// SortTodos orders todos for display: incomplete before complete,
// overdue first, then priority, due date, and creation time.
func SortTodos(todos []*model.Todo, now time.Time) {
	sort.SliceStable(todos, func(i, j int) bool {
		a, b := todos[i], todos[j]
		if a.Complete != b.Complete {
			return !a.Complete
		}
		aOverdue := isOverdue(a, now)
		bOverdue := isOverdue(b, now)
		if aOverdue != bOverdue {
			return aOverdue
		}
		if priorityRank[a.Priority] != priorityRank[b.Priority] {
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		}
		if !a.DueDate.IsZero() && !b.DueDate.IsZero() && !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		if a.DueDate.IsZero() != b.DueDate.IsZero() {
			return !a.DueDate.IsZero()
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

func isOverdue(todo *model.Todo, now time.Time) bool {
	return !todo.Complete && !todo.DueDate.IsZero() && todo.DueDate.Before(now)
}

func validateTodo(todo *model.Todo) error {
	if todo.Text == "" {
		return errors.New("todo text is required")
	}
	if len(todo.Text) > maxTodoLength {
		return errors.New("todo text exceeds maximum length")
	}
	if len(todo.Tags) > maxTodoTags {
		return errors.New("too many tags")
	}
	for _, tag := range todo.Tags {
		if tag == "" || len(tag) > maxTagLength {
			return errors.New("invalid tag")
		}
	}
	switch todo.Priority {
	case "", model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
	default:
		return errors.New("invalid priority")
	}
	return nil
}

func (svc *TodosService) GetUserTodos(ctx context.Context, userID string) ([]*model.Todo, error) {
	todos, err := svc.TodosRepo.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, err
	}
	SortTodos(todos, time.Now())
	return todos, nil
}

func (svc *TodosService) CreateTodo(ctx context.Context, todo *model.Todo) error {
	if todo.UserID == "" {
		return errors.New("user ID is required")
	}
	if err := validateTodo(todo); err != nil {
		return err
	}

	if todo.TodoID == "" {
		todo.TodoID = utils.GenerateID()
	}
	if todo.Priority == "" {
		todo.Priority = model.PriorityMedium
	}
	now := time.Now()
	todo.Complete = false
	todo.CreatedAt = now
	todo.UpdatedAt = now

	return svc.TodosRepo.CreateTodo(ctx, todo)
}

func (svc *TodosService) UpdateTodo(ctx context.Context, todoID, userID string, updates *model.Todo) error {
	if err := validateTodo(updates); err != nil {
		return err
	}
	updates.UpdatedAt = time.Now()
	return svc.TodosRepo.UpdateTodo(ctx, todoID, userID, updates)
}

// ToggleComplete flips a todo's completion flag.
func (svc *TodosService) ToggleComplete(ctx context.Context, todoID, userID string) (*model.Todo, error) {
	todo, err := svc.TodosRepo.GetTodo(ctx, todoID, userID)
	if err != nil {
		return nil, err
	}
	todo.Complete = !todo.Complete
	todo.UpdatedAt = time.Now()
	if err := svc.TodosRepo.SetComplete(ctx, todoID, userID, todo.Complete); err != nil {
		return nil, err
	}
	return todo, nil
}

func (svc *TodosService) DeleteTodo(ctx context.Context, todoID, userID string) error {
	return svc.TodosRepo.DeleteTodo(ctx, todoID, userID)
}
