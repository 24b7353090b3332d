// Package api is a thin typed client for the EduGenie backend. Every
// method forwards its arguments to one endpoint and unwraps the response
// body or returns a normalized *APIError. There is no retry policy: a
// failed call surfaces once and leaves state to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/edugenie/edugenie/internal/quiz"
)

// Client talks to the EduGenie backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

// New creates a Client from the given config.
func New(cfg Config, log logrus.FieldLogger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// User is the authenticated profile returned by /auth/me.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DashboardStats is the /dashboard/ aggregate.
type DashboardStats struct {
	TotalQuizGiven       int     `json:"total_quiz_given"`
	TotalTopicsExplained int     `json:"total_topics_explained"`
	AvgQuizPercent       float64 `json:"avg_quiz_percent"`
}

// ProgressItem is one entry of the bearer-scoped progress list. Quiz and
// explanation items share the envelope and differ in their payload fields.
type ProgressItem struct {
	Type           string `json:"type"` // "quiz" | "explanation"
	Topic          string `json:"topic"`
	Level          string `json:"level,omitempty"`
	QuizScore      int    `json:"quiz_score,omitempty"`
	TotalQuestions int    `json:"total_questions,omitempty"`
	Explanation    string `json:"explanation,omitempty"`
}

// StoredQuizResult is a past result as the backend stores it. Field names
// differ from the save payload; MapResult converts to the local shape.
type StoredQuizResult struct {
	Topic          string                `json:"topic"`
	Level          string                `json:"level"`
	QuizScore      int                   `json:"quiz_score"`
	TotalQuestions int                   `json:"total_questions"`
	TimeSpent      int                   `json:"time_spent"`
	Questions      []quiz.QuestionResult `json:"questions"`
}

// MapResult converts the backend record onto the local result shape.
func (r *StoredQuizResult) MapResult() *quiz.Result {
	return &quiz.Result{
		Score:          r.QuizScore,
		TotalQuestions: r.TotalQuestions,
		Topic:          r.Topic,
		Level:          r.Level,
		Questions:      r.Questions,
		TimeSpent:      r.TimeSpent,
	}
}

// Signup registers a new account. A 409 means the email is taken.
func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.postJSON(ctx, "/auth/signup", "", body, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.postJSON(ctx, "/auth/login", "", body, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Me fetches the authenticated profile for the token.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var u User
	if err := c.getJSON(ctx, "/auth/me", token, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Dashboard fetches the aggregate stats for the dashboard screen.
func (c *Client) Dashboard(ctx context.Context, token string) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.getJSON(ctx, "/dashboard/", token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Progress fetches the progress list filtered by type (all|quiz|explanation).
func (c *Client) Progress(ctx context.Context, token, typ string) ([]ProgressItem, error) {
	var out struct {
		Items []ProgressItem `json:"items"`
	}
	path := "/dashboard/progress?type=" + url.QueryEscape(typ)
	if err := c.getJSON(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// SaveQuizResult persists a completed quiz keyed by (user, topic).
func (c *Client) SaveQuizResult(ctx context.Context, token string, result *quiz.Result) error {
	return c.postJSON(ctx, "/dashboard/save/quiz", token, result, nil)
}

// ExplanationRecord is the /dashboard/save/explanation payload.
type ExplanationRecord struct {
	Topic       string `json:"topic"`
	Level       string `json:"level"`
	Explanation string `json:"explanation"`
}

// SaveExplanation persists a generated explanation.
func (c *Client) SaveExplanation(ctx context.Context, token string, rec ExplanationRecord) error {
	return c.postJSON(ctx, "/dashboard/save/explanation", token, rec, nil)
}

// QuizResultByTopic fetches a previously stored result for review.
func (c *Client) QuizResultByTopic(ctx context.Context, token, topic string) (*StoredQuizResult, error) {
	var stored StoredQuizResult
	path := "/dashboard/quiz-result/" + url.PathEscape(topic)
	if err := c.getJSON(ctx, path, token, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Explain asks the backend AI for a topic explanation at a level.
func (c *Client) Explain(ctx context.Context, topic string, level quiz.Level) (string, error) {
	body := map[string]string{"topic": topic, "level": string(level)}
	var out struct {
		Explanation string `json:"explanation"`
	}
	if err := c.postJSON(ctx, "/ai/explain", "", body, &out); err != nil {
		return "", err
	}
	return out.Explanation, nil
}

// GenerateQuiz asks the backend AI to generate questions for a config.
// The returned set is validated before use; the backend is not trusted to
// always emit well-formed AI output.
func (c *Client) GenerateQuiz(ctx context.Context, cfg quiz.Config) ([]quiz.Question, error) {
	body := map[string]any{
		"topic":         cfg.Topic,
		"level":         string(cfg.Level),
		"num_questions": cfg.NumQuestions,
	}
	var out struct {
		Quiz []quiz.Question `json:"quiz"`
	}
	if err := c.postJSON(ctx, "/ai/quiz", "", body, &out); err != nil {
		return nil, err
	}
	if err := quiz.ValidateQuestions(out.Quiz); err != nil {
		return nil, fmt.Errorf("malformed quiz from server: %w", err)
	}
	return out.Quiz, nil
}

// SummarizeURL summarizes the page or video at url in the given language.
func (c *Client) SummarizeURL(ctx context.Context, pageURL, language string) (string, error) {
	body := map[string]string{"url": pageURL, "language": language}
	var out struct {
		Summary string `json:"summary"`
	}
	if err := c.postJSON(ctx, "/summarize/url", "", body, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

// SummarizePDF uploads a PDF as multipart form data and returns its summary.
func (c *Client) SummarizePDF(ctx context.Context, filename string, contents io.Reader, language string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, contents); err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	if err := mw.WriteField("language", language); err != nil {
		return "", fmt.Errorf("write language field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/summarize/pdf", &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		Summary string `json:"summary"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

// postJSON issues a JSON POST, optionally bearer-authenticated, decoding
// the response into out when out is non-nil.
func (c *Client) postJSON(ctx context.Context, path, token string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

// getJSON issues a bearer-authenticated GET.
func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := errorFromResponse(resp)
		c.log.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
			"status": resp.StatusCode,
		}).Warn(apiErr.Message)
		return apiErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
