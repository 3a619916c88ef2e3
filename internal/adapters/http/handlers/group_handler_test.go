package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/group"
	"github.com/jsamuelsen11/kanban-board/internal/domain/todo"
	"github.com/jsamuelsen11/kanban-board/mocks"
)

func newGroupHandler(t *testing.T) (*handlers.GroupHandler, *mocks.MockBoardService) {
	t.Helper()
	svc := mocks.NewMockBoardService(t)
	return handlers.NewGroupHandler(svc), svc
}

func groupRequest(method, path string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
	}
	return withChiParams(req, map[string]string{"id": testGroupID})
}

// --- ListGroups ---

func TestListGroups(t *testing.T) {
	t.Parallel()
	h, svc := newGroupHandler(t)

	doing := validGroup()
	doing.ID, doing.Name, doing.Position = "g2", "Doing", 1
	svc.EXPECT().SortedGroups().Return([]group.Group{validGroup(), doing})

	rec := httptest.NewRecorder()
	h.ListGroups(rec, httptest.NewRequest(http.MethodGet, "/api/v1/groups", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.GroupListResponse](t, rec)
	if resp.Count != 2 {
		t.Fatalf("Count = %d, want 2", resp.Count)
	}
	if resp.Groups[0].Name != group.DefaultName || resp.Groups[1].Name != "Doing" {
		t.Errorf("names = [%s %s], want [To Do Doing]", resp.Groups[0].Name, resp.Groups[1].Name)
	}
}

// --- CreateGroup ---

func TestCreateGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      dto.CreateGroupRequest
		position *int
	}{
		{name: "appended", req: dto.CreateGroupRequest{Name: "Doing"}},
		{name: "explicit position", req: dto.CreateGroupRequest{Name: "Doing", Position: intPtr(0)}, position: intPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newGroupHandler(t)

			created := validGroup()
			created.Name = "Doing"
			svc.EXPECT().AddGroup(mock.Anything, "Doing", tt.position).Return(&created, nil)

			rec := httptest.NewRecorder()
			h.CreateGroup(rec, groupRequest(http.MethodPost, "/api/v1/groups", jsonBody(t, tt.req)))

			requireStatus(t, rec, http.StatusCreated)
			if resp := decodeJSON[dto.GroupResponse](t, rec); resp.Name != "Doing" {
				t.Errorf("Name = %q, want %q", resp.Name, "Doing")
			}
		})
	}
}

func TestCreateGroup_BlankName(t *testing.T) {
	t.Parallel()
	h, _ := newGroupHandler(t)

	rec := httptest.NewRecorder()
	h.CreateGroup(rec, groupRequest(http.MethodPost, "/api/v1/groups", jsonBody(t, dto.CreateGroupRequest{Name: " "})))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateGroup_NameTooLong(t *testing.T) {
	t.Parallel()
	h, svc := newGroupHandler(t)

	svc.EXPECT().AddGroup(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("name", domain.MsgTooLong(group.MaxNameLength)))

	rec := httptest.NewRecorder()
	h.CreateGroup(rec, groupRequest(http.MethodPost, "/api/v1/groups", jsonBody(t, dto.CreateGroupRequest{Name: "x"})))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- UpdateGroup ---

func namePtr(want string) any {
	return mock.MatchedBy(func(p *string) bool { return p != nil && *p == want })
}

func positionPtr(want int) any {
	return mock.MatchedBy(func(p *int) bool { return p != nil && *p == want })
}

func TestUpdateGroup_RenameAndReposition(t *testing.T) {
	t.Parallel()
	h, svc := newGroupHandler(t)

	updated := validGroup()
	updated.Name, updated.Position = "Backlog", 3
	svc.EXPECT().UpdateGroup(mock.Anything, testGroupID, namePtr("Backlog"), positionPtr(3)).Return(true, nil).Once()
	svc.EXPECT().Group(testGroupID).Return(&updated, true)

	body := jsonBody(t, dto.UpdateGroupRequest{Name: stringPtr("Backlog"), Position: intPtr(3)})
	rec := httptest.NewRecorder()
	h.UpdateGroup(rec, groupRequest(http.MethodPatch, "/api/v1/groups/"+testGroupID, body))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.GroupResponse](t, rec)
	if resp.Name != "Backlog" || resp.Position != 3 {
		t.Errorf("group = %+v, want Backlog at 3", resp)
	}
}

func TestUpdateGroup_PositionOnly(t *testing.T) {
	t.Parallel()
	h, svc := newGroupHandler(t)

	g := validGroup()
	svc.EXPECT().UpdateGroup(mock.Anything, testGroupID, (*string)(nil), positionPtr(0)).Return(true, nil)
	svc.EXPECT().Group(testGroupID).Return(&g, true)

	body := jsonBody(t, dto.UpdateGroupRequest{Position: intPtr(0)})
	rec := httptest.NewRecorder()
	h.UpdateGroup(rec, groupRequest(http.MethodPatch, "/api/v1/groups/"+testGroupID, body))

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateGroup_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newGroupHandler(t)

	svc.EXPECT().UpdateGroup(mock.Anything, testGroupID, namePtr("Backlog"), positionPtr(1)).Return(false, nil)

	body := jsonBody(t, dto.UpdateGroupRequest{Name: stringPtr("Backlog"), Position: intPtr(1)})
	rec := httptest.NewRecorder()
	h.UpdateGroup(rec, groupRequest(http.MethodPatch, "/api/v1/groups/"+testGroupID, body))

	requireStatus(t, rec, http.StatusNotFound)
}

func TestUpdateGroup_SaveFailureIsOneOutcome(t *testing.T) {
	t.Parallel()
	h, svc := newGroupHandler(t)

	svc.EXPECT().UpdateGroup(mock.Anything, testGroupID, namePtr("Backlog"), positionPtr(2)).
		Return(false, domain.NewStorageError("UpdateGroup", errors.New("redis: connection refused"))).Once()

	body := jsonBody(t, dto.UpdateGroupRequest{Name: stringPtr("Backlog"), Position: intPtr(2)})
	rec := httptest.NewRecorder()
	h.UpdateGroup(rec, groupRequest(http.MethodPatch, "/api/v1/groups/"+testGroupID, body))

	requireStatus(t, rec, http.StatusServiceUnavailable)
	svc.AssertNotCalled(t, "Group", testGroupID)
}

func TestUpdateGroup_EmptyBody(t *testing.T) {
	t.Parallel()
	h, _ := newGroupHandler(t)

	rec := httptest.NewRecorder()
	h.UpdateGroup(rec, groupRequest(http.MethodPatch, "/api/v1/groups/"+testGroupID, bytes.NewBufferString("{}")))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DeleteGroup ---

func TestDeleteGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ok         bool
		err        error
		wantStatus int
	}{
		{name: "removed", ok: true, wantStatus: http.StatusNoContent},
		{name: "unknown id", wantStatus: http.StatusNotFound},
		{name: "save failed", err: errSaveFailed, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newGroupHandler(t)

			svc.EXPECT().RemoveGroup(mock.Anything, testGroupID).Return(tt.ok, tt.err)

			rec := httptest.NewRecorder()
			h.DeleteGroup(rec, groupRequest(http.MethodDelete, "/api/v1/groups/"+testGroupID, nil))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- ListGroupTodos ---

func TestListGroupTodos(t *testing.T) {
	t.Parallel()
	h, svc := newGroupHandler(t)

	g := validGroup()
	done := validTodo()
	done.Completed = true
	svc.EXPECT().Group(testGroupID).Return(&g, true)
	svc.EXPECT().TodosForGroup(testGroupID).Return([]todo.Todo{validTodo(), done})

	rec := httptest.NewRecorder()
	h.ListGroupTodos(rec, groupRequest(http.MethodGet, "/api/v1/groups/"+testGroupID+"/todos", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoListResponse](t, rec)
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	if resp.Filter != "" {
		t.Errorf("Filter = %q, want empty", resp.Filter)
	}
}

func TestListGroupTodos_UnknownGroup(t *testing.T) {
	t.Parallel()
	h, svc := newGroupHandler(t)

	svc.EXPECT().Group(testGroupID).Return(nil, false)

	rec := httptest.NewRecorder()
	h.ListGroupTodos(rec, groupRequest(http.MethodGet, "/api/v1/groups/"+testGroupID+"/todos", nil))

	requireStatus(t, rec, http.StatusNotFound)
}
