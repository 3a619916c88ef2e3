package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-board/internal/domain/group"
	"github.com/jsamuelsen11/kanban-board/internal/domain/todo"
)

const (
	testGroupID = "7b0c6f0e-2c1d-4d55-9a4e-0d1c2b3a4f50"
	testTodoID  = "c3e1a9f2-8d7b-4a61-b2c4-5e6f7a8b9c0d"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validGroup() group.Group {
	return group.Group{
		ID:        testGroupID,
		Name:      group.DefaultName,
		Position:  0,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          testTodoID,
		Text:        "Buy groceries",
		GroupID:     testGroupID,
		Description: "Milk, eggs, bread",
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func stringPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
