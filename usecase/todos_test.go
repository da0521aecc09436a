package usecase

import (
	"testing"
	"time"

	"main/model"
)

func TestSortTodosOrdering(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	todos := []*model.Todo{
		{TodoID: "done", Complete: true, Priority: model.PriorityHigh},
		{TodoID: "low-future", Priority: model.PriorityLow, DueDate: future},
		{TodoID: "overdue", Priority: model.PriorityLow, DueDate: past},
		{TodoID: "high-future", Priority: model.PriorityHigh, DueDate: future},
		{TodoID: "medium-nodate", Priority: model.PriorityMedium},
	}

	SortTodos(todos, now)

	want := []string{"overdue", "high-future", "medium-nodate", "low-future", "done"}
	for i, id := range want {
		if todos[i].TodoID != id {
			t.Fatalf("position %d = %s, want %s", i, todos[i].TodoID, id)
		}
	}
}

func TestSortTodosDueDateBeforeCreated(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	todos := []*model.Todo{
		{TodoID: "later", Priority: model.PriorityMedium, DueDate: now.Add(48 * time.Hour)},
		{TodoID: "sooner", Priority: model.PriorityMedium, DueDate: now.Add(12 * time.Hour)},
	}

	SortTodos(todos, now)

	if todos[0].TodoID != "sooner" {
		t.Errorf("expected sooner due date first, got %s", todos[0].TodoID)
	}
}

func TestValidateTodoRules(t *testing.T) {
	tests := []struct {
		name    string
		todo    model.Todo
		wantErr bool
	}{
		{"valid", model.Todo{Text: "buy milk", Tags: []string{"errand"}}, false},
		{"empty text", model.Todo{}, true},
		{"too many tags", model.Todo{Text: "x", Tags: []string{"a", "b", "c", "d", "e", "f"}}, true},
		{"long tag", model.Todo{Text: "x", Tags: []string{"aaaaaaaaaaaaaaaaaaaaa"}}, true},
		{"bad priority", model.Todo{Text: "x", Priority: "URGENT"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateTodo(&tc.todo)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateTodo() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
