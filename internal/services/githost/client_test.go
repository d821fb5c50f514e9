package githost_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prodlogs/internal/config"
	"prodlogs/internal/services/githost"
)

func testConfig(baseURL string) config.GitHost {
	return config.GitHost{
		Enabled:        true,
		BaseURL:        baseURL,
		Repo:           "plant-ops/output-log",
		FilePath:       "data/daily_output_log.csv",
		Branch:         "main",
		Token:          "tok",
		CommitterName:  "Plant Bot",
		CommitterEmail: "bot@example.com",
	}
}

func TestNewClientDisabledReturnsNil(t *testing.T) {
	if githost.NewClient(config.GitHost{Enabled: false}) != nil {
		t.Fatal("disabled config must yield a nil client")
	}
}

func TestFetchFileDecodesContentAndSHA(t *testing.T) {
	const csv = "Date,Machine\n2025-09-04,Cutter 1\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/repos/plant-ops/output-log/contents/data/daily_output_log.csv" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("ref") != "main" {
			t.Errorf("missing ref param: %s", r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "token tok" {
			t.Errorf("missing auth header")
		}
		// The API wraps long base64 payloads with newlines.
		encoded := base64.StdEncoding.EncodeToString([]byte(csv))
		wrapped := encoded[:10] + "\n" + encoded[10:]
		json.NewEncoder(w).Encode(map[string]string{"content": wrapped, "sha": "abc123"})
	}))
	defer server.Close()

	client := githost.NewClientWithDoer(testConfig(server.URL), server.Client())
	file, err := client.FetchFile(context.Background())
	if err != nil {
		t.Fatalf("FetchFile: %v", err)
	}
	if !file.Exists || file.SHA != "abc123" || file.Content != csv {
		t.Fatalf("unexpected file: %+v", file)
	}
}

func TestFetchFileMissingIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := githost.NewClientWithDoer(testConfig(server.URL), server.Client())
	file, err := client.FetchFile(context.Background())
	if err != nil {
		t.Fatalf("FetchFile: %v", err)
	}
	if file.Exists || file.SHA != "" {
		t.Fatalf("expected missing file, got %+v", file)
	}
}

func TestCommitFileSendsPayload(t *testing.T) {
	var got struct {
		Message   string `json:"message"`
		Content   string `json:"content"`
		Branch    string `json:"branch"`
		SHA       string `json:"sha"`
		Committer *struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"committer"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := githost.NewClientWithDoer(testConfig(server.URL), server.Client())
	err := client.CommitFile(context.Background(), "a,b\n1,2\n", "abc123", "Add daily output log for 2025-09-04 (Shift 1)")
	if err != nil {
		t.Fatalf("CommitFile: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(got.Content)
	if err != nil || string(decoded) != "a,b\n1,2\n" {
		t.Fatalf("content not base64 csv: %q err=%v", got.Content, err)
	}
	if got.SHA != "abc123" || got.Branch != "main" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.Committer == nil || got.Committer.Name != "Plant Bot" {
		t.Fatalf("committer missing: %+v", got.Committer)
	}
}

func TestCommitFileSurfacesRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"conflict"}`, http.StatusConflict)
	}))
	defer server.Close()

	client := githost.NewClientWithDoer(testConfig(server.URL), server.Client())
	err := client.CommitFile(context.Background(), "x", "stale", "msg")
	if err == nil {
		t.Fatal("expected error for 409 response")
	}
}
