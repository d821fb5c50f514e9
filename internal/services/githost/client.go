package githost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"prodlogs/internal/config"
)

// HTTPDoer describes the HTTP client used by the git-host service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one file in one repository.
type Client struct {
	baseURL        string
	repo           string
	filePath       string
	branch         string
	token          string
	committerName  string
	committerEmail string
	client         HTTPDoer
}

// NewClient builds a client from configuration. Returns nil when the mirror
// is disabled so callers can skip the push without a second flag check.
func NewClient(cfg config.GitHost) *Client {
	if !cfg.Enabled {
		return nil
	}
	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	return NewClientWithDoer(cfg, &http.Client{Timeout: timeout})
}

// NewClientWithDoer builds a client with an explicit HTTP doer.
func NewClientWithDoer(cfg config.GitHost, doer HTTPDoer) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		repo:           cfg.Repo,
		filePath:       cfg.FilePath,
		branch:         cfg.Branch,
		token:          cfg.Token,
		committerName:  cfg.CommitterName,
		committerEmail: cfg.CommitterEmail,
		client:         doer,
	}
}

// File is the state of the mirrored file on the remote.
type File struct {
	Content string
	SHA     string
	Exists  bool
}

type contentsResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

type committer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type putPayload struct {
	Message   string     `json:"message"`
	Content   string     `json:"content"`
	Branch    string     `json:"branch"`
	SHA       string     `json:"sha,omitempty"`
	Committer *committer `json:"committer,omitempty"`
}

func (c *Client) contentsURL() string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", c.baseURL, c.repo, c.filePath)
}

// FetchFile retrieves the current remote content and blob SHA. A missing
// file is not an error; Exists is false and the commit omits the SHA.
func (c *Client) FetchFile(ctx context.Context) (File, error) {
	endpoint := c.contentsURL()
	if c.branch != "" {
		endpoint += "?ref=" + url.QueryEscape(c.branch)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return File{}, fmt.Errorf("build fetch request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return File{}, fmt.Errorf("fetch %s: %w", c.filePath, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return File{}, nil
	case resp.StatusCode >= http.StatusMultipleChoices:
		return File{}, statusError("fetch", c.filePath, resp)
	}

	var parsed contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return File{}, fmt.Errorf("decode contents response: %w", err)
	}
	// The API wraps base64 content across lines.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(parsed.Content, "\n", ""))
	if err != nil {
		return File{}, fmt.Errorf("decode file content: %w", err)
	}
	return File{Content: string(raw), SHA: parsed.SHA, Exists: true}, nil
}

// CommitFile replaces the remote file with content. sha must be the blob SHA
// from FetchFile when the file already exists, and empty for a new file.
func (c *Client) CommitFile(ctx context.Context, content, sha, message string) error {
	payload := putPayload{
		Message: message,
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
		Branch:  c.branch,
		SHA:     sha,
	}
	if c.committerName != "" || c.committerEmail != "" {
		payload.Committer = &committer{Name: c.committerName, Email: c.committerEmail}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode commit payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build commit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("commit %s: %w", c.filePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return statusError("commit", c.filePath, resp)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
}

func statusError(op, path string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%s %s: remote returned %d: %s", op, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
}
