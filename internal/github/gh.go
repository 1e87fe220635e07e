package gh

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/go-github/v84/github"
)

const (
	ReasonAuthRequired = "auth_required"
	ReasonAPIError     = "api_error"
	ReasonNoRuns       = "no_runs"
	ReasonRepoUnknown  = "repo_unknown"
)

// RunStatus is the latest run of one workflow as reported by GitHub.
type RunStatus struct {
	Source     string `json:"source"`
	OK         bool   `json:"ok"`
	Reason     string `json:"reason,omitempty"`
	Conclusion string `json:"conclusion,omitempty"`
	RunID      int64  `json:"run_id,omitempty"`
	HTMLURL    string `json:"html_url,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

func failed(reason string) RunStatus {
	return RunStatus{Source: "github", OK: false, Reason: reason}
}

type Client interface {
	SetWarningBuffer(writer io.Writer)
	SetInfoBuffer(writer io.Writer)
	LatestRun(ctx context.Context, workflowFile string) RunStatus
}

type GHClient struct {
	owner         string
	repo          string
	token         string
	client        *github.Client
	warningBuffer io.Writer
	infoBuffer    io.Writer
}

// NewClient returns a client for owner/repo. An empty token is allowed;
// lookups then report auth_required without touching the network.
func NewClient(owner, repo, token string) Client {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GHClient{
		owner:         owner,
		repo:          repo,
		token:         token,
		client:        client,
		warningBuffer: io.Discard,
		infoBuffer:    io.Discard,
	}
}

func (gh *GHClient) SetWarningBuffer(writer io.Writer) {
	gh.warningBuffer = writer
}

func (gh *GHClient) SetInfoBuffer(writer io.Writer) {
	gh.infoBuffer = writer
}

// LatestRun never fails; problems are reported through RunStatus.Reason.
func (gh *GHClient) LatestRun(ctx context.Context, workflowFile string) RunStatus {
	if gh.token == "" {
		return failed(ReasonAuthRequired)
	}
	_, _ = fmt.Fprintf(gh.infoBuffer, "Fetching latest run for %s/%s %s\n", gh.owner, gh.repo, workflowFile)
	opts := &github.ListWorkflowRunsOptions{ListOptions: github.ListOptions{PerPage: 1}}
	runs, res, err := gh.client.Actions.ListWorkflowRunsByFileName(ctx, gh.owner, gh.repo, workflowFile, opts)
	if err != nil {
		_, _ = fmt.Fprintf(gh.warningBuffer, "WARNING: Error fetching runs for %s: %v\n", workflowFile, err)
		return failed(ReasonAPIError)
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if runs == nil || len(runs.WorkflowRuns) == 0 {
		return failed(ReasonNoRuns)
	}
	run := runs.WorkflowRuns[0]
	status := RunStatus{
		Source:     "github",
		OK:         true,
		Conclusion: run.GetConclusion(),
		RunID:      run.GetID(),
		HTMLURL:    run.GetHTMLURL(),
	}
	if run.UpdatedAt != nil {
		status.UpdatedAt = run.UpdatedAt.Format(time.RFC3339)
	}
	if status.Conclusion == "" {
		status.Conclusion = run.GetStatus()
	}
	return status
}
