package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeCompletionServer serves a canned chat-completion whose message content
// is the given JSON string.
func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(baseURL string) *Client {
	return New(Options{APIKey: "test-key", BaseURL: baseURL + "/v1", Model: "test-model"})
}

func TestMatchTitles_FiltersToCandidates(t *testing.T) {
	srv := fakeCompletionServer(t, `{"matches": ["sunset vibes", "invented title"]}`)
	defer srv.Close()

	got, err := newTestClient(srv.URL).MatchTitles(context.Background(), "sunset", []string{"sunset vibes", "cat moment"})
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 1 || got[0] != "sunset vibes" {
		t.Fatalf("expected invented title dropped, got %v", got)
	}
}

func TestMatchTitles_MissingMatchesField(t *testing.T) {
	srv := fakeCompletionServer(t, `{"results": []}`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).MatchTitles(context.Background(), "q", []string{"a"})
	if err == nil {
		t.Fatal("expected error for payload without matches field")
	}
}

func TestMatchTitles_MalformedJSON(t *testing.T) {
	srv := fakeCompletionServer(t, `not json at all`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).MatchTitles(context.Background(), "q", []string{"a"})
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestCheckCopyright_Verdicts(t *testing.T) {
	for _, tc := range []struct {
		content string
		want    bool
	}{
		{`{"violation": true}`, true},
		{`{"violation": false}`, false},
	} {
		srv := fakeCompletionServer(t, tc.content)
		got, err := newTestClient(srv.URL).CheckCopyright(context.Background(), "some description")
		srv.Close()
		if err != nil {
			t.Fatalf("check: %v", err)
		}
		if got != tc.want {
			t.Fatalf("content %s: expected %v, got %v", tc.content, tc.want, got)
		}
	}
}

func TestCheckCopyright_MissingViolationField(t *testing.T) {
	srv := fakeCompletionServer(t, `{}`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).CheckCopyright(context.Background(), "desc")
	if err == nil {
		t.Fatal("expected error for payload without violation field")
	}
}

func TestDisabledClient(t *testing.T) {
	c := New(Options{APIKey: "  "})

	if _, err := c.MatchTitles(context.Background(), "q", []string{"a"}); err != ErrDisabled {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if _, err := c.CheckCopyright(context.Background(), "d"); err != ErrDisabled {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestCollaboratorInterface(t *testing.T) {
	var _ Collaborator = (*Client)(nil)
}
