// Package report delivers collected syntax issues to a remote HTTP endpoint.
//
// Delivery is strictly best-effort: the send runs in its own goroutine with
// a per-request timeout, the caller waits for it no longer than a fixed
// ceiling, and every transmission failure is absorbed. A slow or unreachable
// endpoint must never delay process exit beyond the ceiling.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/syncheck/internal/types"
)

// Fixed classification fields. The sentinel path/method mark the report as
// synthetic, not originating from a live HTTP request.
const (
	exceptionType  = "SyntaxError"
	sentinelPath   = "SYNTAX_CHECK"
	sentinelMethod = "SYNTAX_CHECK"
	userAgent      = "SYNTAX_CHECKER"
)

const (
	defaultSendTimeout = 5 * time.Second
	defaultWaitCeiling = 2 * time.Second
)

// Config carries the environment-provided reporter settings. An empty
// EndpointURL disables reporting entirely.
type Config struct {
	EndpointURL string
	BoardID     string
}

// Payload is the wire format the endpoint accepts. Timestamp is always null
// and assigned by the endpoint; Line is null when the first issue has no
// known line.
type Payload struct {
	BoardID       string     `json:"boardId"`
	Timestamp     *time.Time `json:"timestamp"`
	File          string     `json:"file"`
	Line          *int       `json:"line"`
	StackTrace    string     `json:"stackTrace"`
	Message       string     `json:"message"`
	ExceptionType string     `json:"exceptionType"`
	RequestPath   string     `json:"requestPath"`
	RequestMethod string     `json:"requestMethod"`
	UserAgent     string     `json:"userAgent"`
}

// Reporter sends aggregated syntax reports.
type Reporter struct {
	cfg         Config
	client      *http.Client
	logger      *zap.Logger
	waitCeiling time.Duration
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Reporter) { r.client = c }
}

// WithLogger sets the logger for absorbed failures.
func WithLogger(l *zap.Logger) Option {
	return func(r *Reporter) { r.logger = l }
}

// WithSendTimeout bounds the single POST request.
func WithSendTimeout(d time.Duration) Option {
	return func(r *Reporter) { r.client.Timeout = d }
}

// WithWaitCeiling bounds how long Send blocks the caller.
func WithWaitCeiling(d time.Duration) Option {
	return func(r *Reporter) { r.waitCeiling = d }
}

func New(cfg Config, opts ...Option) *Reporter {
	r := &Reporter{
		cfg:         cfg,
		client:      &http.Client{Timeout: defaultSendTimeout},
		logger:      zap.NewNop(),
		waitCeiling: defaultWaitCeiling,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Send posts one aggregate report for all issues and returns once the send
// completes, the wait ceiling elapses, or ctx is done, whichever comes
// first. A send still in flight at that point is abandoned, not cancelled.
// Send never returns an error: a failed payload build is logged, a failed
// transmission is merely debug-logged.
func (r *Reporter) Send(ctx context.Context, issues []types.Issue) {
	if r.cfg.EndpointURL == "" || len(issues) == 0 {
		return
	}

	body, err := json.Marshal(BuildPayload(r.cfg.BoardID, issues))
	if err != nil {
		// A broken payload build is a bug in this tool, not a network
		// hiccup, so it is surfaced in the logs. Still non-fatal.
		r.logger.Error("Failed to build syntax report payload", zap.Error(err))
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.post(body)
	}()

	select {
	case <-done:
	case <-time.After(r.waitCeiling):
		r.logger.Debug("Syntax report still in flight at ceiling, abandoning",
			zap.Duration("ceiling", r.waitCeiling))
	case <-ctx.Done():
	}
}

func (r *Reporter) post(body []byte) {
	req, err := http.NewRequest(http.MethodPost, r.cfg.EndpointURL, bytes.NewReader(body))
	if err != nil {
		r.logger.Debug("Failed to create syntax report request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Debug("Failed to deliver syntax report", zap.Error(err))
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Debug("Syntax report rejected by endpoint",
			zap.Int("status", resp.StatusCode))
	}
}

// BuildPayload aggregates all issues into a single report. The headline
// file and line come from the first issue; the message joins one formatted
// entry per issue and the stack trace carries one line per issue.
// issues must be non-empty.
func BuildPayload(boardID string, issues []types.Issue) Payload {
	messages := make([]string, 0, len(issues))
	traceLines := make([]string, 0, len(issues))

	for _, issue := range issues {
		msg := fmt.Sprintf("File: %s, Line: %s, Error: %s",
			issue.Filename, lineLabel(issue.Line, "unknown"), issue.Message)
		if text := strings.TrimSpace(issue.Text); text != "" {
			msg += fmt.Sprintf(", Code: %s", text)
		}
		messages = append(messages, msg)
		traceLines = append(traceLines,
			fmt.Sprintf("  File %q, line %s", issue.Filename, lineLabel(issue.Line, "?")))
	}

	p := Payload{
		BoardID:       boardID,
		File:          issues[0].Filename,
		StackTrace:    strings.Join(traceLines, "\n"),
		Message:       strings.Join(messages, "; "),
		ExceptionType: exceptionType,
		RequestPath:   sentinelPath,
		RequestMethod: sentinelMethod,
		UserAgent:     userAgent,
	}
	if issues[0].Line > 0 {
		line := issues[0].Line
		p.Line = &line
	}
	return p
}

func lineLabel(line int, unknown string) string {
	if line <= 0 {
		return unknown
	}
	return strconv.Itoa(line)
}
