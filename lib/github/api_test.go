// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestGetIssue(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/repos/owner/repo/issues/42" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		json.NewEncoder(writer).Encode(Issue{
			ID:     9001,
			Number: 42,
			URL:    "https://api.github.com/repos/owner/repo/issues/42",
			Labels: []Label{{Name: "bug"}, {Name: "p1"}},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	issue, err := client.GetIssue(context.Background(), "owner", "repo", 42)
	if err != nil {
		t.Fatalf("GetIssue: %v", err)
	}
	if issue.ID != 9001 {
		t.Errorf("ID = %d, want 9001", issue.ID)
	}
	if got := issue.LabelNames(); !reflect.DeepEqual(got, []string{"bug", "p1"}) {
		t.Errorf("LabelNames() = %v, want [bug p1]", got)
	}
}

func TestReplaceIssueLabels(t *testing.T) {
	var receivedMethod, receivedPath string
	var receivedBody struct {
		Labels []string `json:"labels"`
	}

	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedMethod = request.Method
		receivedPath = request.URL.Path
		json.NewDecoder(request.Body).Decode(&receivedBody)
		json.NewEncoder(writer).Encode([]Label{{Name: "bug"}, {Name: "p1"}})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	labels, err := client.ReplaceIssueLabels(context.Background(), "owner", "repo", 42, []string{"bug", "p1"})
	if err != nil {
		t.Fatalf("ReplaceIssueLabels: %v", err)
	}

	if receivedMethod != "PUT" {
		t.Errorf("method = %s, want PUT", receivedMethod)
	}
	if receivedPath != "/repos/owner/repo/issues/42/labels" {
		t.Errorf("path = %s, want /repos/owner/repo/issues/42/labels", receivedPath)
	}
	if !reflect.DeepEqual(receivedBody.Labels, []string{"bug", "p1"}) {
		t.Errorf("request labels = %v, want [bug p1]", receivedBody.Labels)
	}
	if len(labels) != 2 {
		t.Errorf("got %d labels back, want 2", len(labels))
	}
}

func TestReplaceIssueLabels_EmptySetSendsEmptyArray(t *testing.T) {
	var raw map[string]json.RawMessage
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		json.NewDecoder(request.Body).Decode(&raw)
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.ReplaceIssueLabels(context.Background(), "owner", "repo", 1, nil); err != nil {
		t.Fatalf("ReplaceIssueLabels: %v", err)
	}
	if string(raw["labels"]) != "[]" {
		t.Errorf("labels = %s, want []", raw["labels"])
	}
}

func TestListRepoProjects(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/repos/owner/repo/projects" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		if request.URL.Query().Get("per_page") != "100" {
			t.Errorf("per_page = %q, want 100", request.URL.Query().Get("per_page"))
		}
		json.NewEncoder(writer).Encode([]Project{
			{ID: 1, Name: "Roadmap", ColumnsURL: "https://api.github.com/projects/1/columns"},
			{ID: 2, Name: "Sprint", ColumnsURL: "https://api.github.com/projects/2/columns"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	projects, err := client.ListRepoProjects(context.Background(), "owner", "repo").Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(projects) != 2 || projects[1].Name != "Sprint" {
		t.Errorf("projects = %+v, want Roadmap and Sprint", projects)
	}
}

func TestListProjectColumnsAndCards(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/projects/2/columns":
			json.NewEncoder(writer).Encode([]ProjectColumn{
				{ID: 1, Name: "To do"},
				{ID: 2, Name: "Done"},
			})
		case "/projects/columns/1/cards":
			json.NewEncoder(writer).Encode([]ProjectCard{
				{ID: 77, ContentURL: "https://api.github.com/repos/owner/repo/issues/42"},
				{ID: 78, Note: "a note card"},
			})
		default:
			t.Errorf("unexpected path: %s", request.URL.Path)
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server)
	ctx := context.Background()

	columns, err := client.ListProjectColumns(ctx, 2).Collect(ctx)
	if err != nil {
		t.Fatalf("ListProjectColumns: %v", err)
	}
	if len(columns) != 2 || columns[0].Name != "To do" || columns[1].ID != 2 {
		t.Errorf("columns = %+v", columns)
	}

	cards, err := client.ListColumnCards(ctx, 1).Collect(ctx)
	if err != nil {
		t.Fatalf("ListColumnCards: %v", err)
	}
	if len(cards) != 2 || cards[0].ID != 77 || cards[1].ContentURL != "" {
		t.Errorf("cards = %+v", cards)
	}
}

func TestCreateProjectCard(t *testing.T) {
	var receivedBody CreateCardRequest
	var receivedPath, receivedMethod string

	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedPath = request.URL.Path
		receivedMethod = request.Method
		json.NewDecoder(request.Body).Decode(&receivedBody)

		writer.WriteHeader(http.StatusCreated)
		json.NewEncoder(writer).Encode(ProjectCard{
			ID:         500,
			ContentURL: "https://api.github.com/repos/owner/repo/issues/42",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	card, err := client.CreateProjectCard(context.Background(), 1, CreateCardRequest{
		ContentID:   9001,
		ContentType: "Issue",
	})
	if err != nil {
		t.Fatalf("CreateProjectCard: %v", err)
	}

	if receivedMethod != "POST" {
		t.Errorf("method = %s, want POST", receivedMethod)
	}
	if receivedPath != "/projects/columns/1/cards" {
		t.Errorf("path = %s, want /projects/columns/1/cards", receivedPath)
	}
	if receivedBody.ContentID != 9001 || receivedBody.ContentType != "Issue" {
		t.Errorf("request = %+v, want content 9001/Issue", receivedBody)
	}
	if card.ID != 500 {
		t.Errorf("card.ID = %d, want 500", card.ID)
	}
}

func TestMoveProjectCard(t *testing.T) {
	var receivedBody MoveCardRequest
	var receivedPath string

	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedPath = request.URL.Path
		json.NewDecoder(request.Body).Decode(&receivedBody)
		writer.WriteHeader(http.StatusCreated)
		writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	err := client.MoveProjectCard(context.Background(), 77, MoveCardRequest{
		Position: CardPositionBottom,
		ColumnID: 2,
	})
	if err != nil {
		t.Fatalf("MoveProjectCard: %v", err)
	}

	if receivedPath != "/projects/columns/cards/77/moves" {
		t.Errorf("path = %s, want /projects/columns/cards/77/moves", receivedPath)
	}
	if receivedBody.Position != "bottom" || receivedBody.ColumnID != 2 {
		t.Errorf("request = %+v, want bottom of column 2", receivedBody)
	}
}

func TestPageIterator(t *testing.T) {
	page := 0
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		page++
		switch page {
		case 1:
			nextURL := "https://" + request.Host + "/projects/columns/1/cards?per_page=100&page=2"
			writer.Header().Set("Link", `<`+nextURL+`>; rel="next"`)
			json.NewEncoder(writer).Encode([]ProjectCard{{ID: 1}, {ID: 2}})
		case 2:
			json.NewEncoder(writer).Encode([]ProjectCard{{ID: 3}})
		default:
			t.Errorf("unexpected page %d", page)
			writer.WriteHeader(500)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server)
	cards, err := client.ListColumnCards(context.Background(), 1).Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	if cards[0].ID != 1 || cards[1].ID != 2 || cards[2].ID != 3 {
		t.Errorf("cards = %v, want ids 1,2,3", cards)
	}
}

func TestPageIterator_EmptyPage(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	iterator := client.ListColumnCards(context.Background(), 1)

	first, err := iterator.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if first == nil || len(first) != 0 {
		t.Errorf("first page = %v, want empty non-nil slice", first)
	}

	second, err := iterator.Next(context.Background())
	if err != nil || second != nil {
		t.Errorf("second Next = %v, %v, want nil, nil", second, err)
	}
}
