package app

import (
	"bytes"
	"context"
	"encoding/json"
	"estudo_backend/internal/config"
	"estudo_backend/pkg/database"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details string          `json:"details"`
}

type authData struct {
	Token string `json:"token"`
	User  struct {
		ID uint `json:"id"`
	} `json:"user"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	return newTestAppWith(t, nil)
}

func newTestAppWith(t *testing.T, mutate func(*config.Config)) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenInMemory(t.Name())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	cfg := &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: "release"},
		Database:  config.DatabaseConfig{Driver: "sqlite"},
		JWT:       config.JWTConfig{Secret: "router-test-secret-router-test-secret", ExpireTime: time.Hour},
		Storage:   config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, WindowMinutes: 1},
	}

	if mutate != nil {
		mutate(cfg)
	}

	app := New(cfg, db, nil)
	t.Cleanup(func() { app.Close(context.Background()) })
	return app
}

func call(t *testing.T, app *App, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode %s %s: %v body=%s", method, path, err, w.Body.String())
		}
	}
	return w, resp
}

func signup(t *testing.T, app *App, email, userType string) authData {
	t.Helper()
	w, resp := call(t, app, http.MethodPost, "/signup", "", map[string]string{
		"name":     "Usuário Teste",
		"email":    email,
		"password": "secret123",
		"userType": userType,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: status=%d body=%s", w.Code, w.Body.String())
	}
	var data authData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode signup: %v", err)
	}
	return data
}

func TestSubmitAndReportFlow(t *testing.T) {
	app := newTestApp(t)
	student := signup(t, app, "u123@x.com", "aluno")

	submissions := []map[string]interface{}{
		{"userId": student.User.ID, "questionId": "1", "subject": "Math", "topic": "Algebra", "isCorrect": true, "difficulty": "easy"},
		{"userId": student.User.ID, "questionId": 2, "subject": "Math", "topic": "Algebra", "isCorrect": false},
		{"userId": student.User.ID, "questionId": "3", "subject": "Physics", "isCorrect": true, "timeSpentSeconds": 40},
	}
	for i, body := range submissions {
		w, resp := call(t, app, http.MethodPost, "/responses", student.Token, body)
		if w.Code != http.StatusCreated {
			t.Fatalf("submit %d: status=%d body=%s", i, w.Code, w.Body.String())
		}
		var data struct {
			ID             uint   `json:"id"`
			UserID         uint   `json:"userId"`
			QuestionID     string `json:"questionId"`
			TotalResponses int64  `json:"totalResponses"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode submit: %v", err)
		}
		if resp.Message != "Response saved successfully" || data.TotalResponses != int64(i+1) || data.QuestionID != fmt.Sprint(i+1) {
			t.Fatalf("unexpected submit response: %s", w.Body.String())
		}
	}

	w, resp := call(t, app, http.MethodGet, fmt.Sprintf("/users/%d/performance", student.User.ID), student.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("performance: status=%d body=%s", w.Code, w.Body.String())
	}
	var perf map[string]interface{}
	if err := json.Unmarshal(resp.Data, &perf); err != nil {
		t.Fatalf("decode performance: %v", err)
	}
	for _, key := range []string{"bySubject", "recentResponses", "byDifficulty", "totalResponses", "correctResponses", "accuracy", "totalSubjects"} {
		if _, ok := perf[key]; !ok {
			t.Fatalf("performance missing %q: %s", key, w.Body.String())
		}
	}
	if perf["accuracy"].(float64) != 67 || perf["totalResponses"].(float64) != 3 || perf["totalSubjects"].(float64) != 2 {
		t.Fatalf("unexpected performance totals: %s", w.Body.String())
	}

	w, resp = call(t, app, http.MethodGet, fmt.Sprintf("/users/%d/progress", student.User.ID), student.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("progress: status=%d body=%s", w.Code, w.Body.String())
	}
	var progress struct {
		TotalQuestoes int64   `json:"totalQuestoes"`
		Acertos       int64   `json:"acertos"`
		MediaGeral    float64 `json:"mediaGeral"`
		DiasEstudo    int64   `json:"diasEstudo"`
	}
	if err := json.Unmarshal(resp.Data, &progress); err != nil {
		t.Fatalf("decode progress: %v", err)
	}
	if progress.TotalQuestoes != 3 || progress.Acertos != 2 || progress.MediaGeral != 66.67 || progress.DiasEstudo != 1 {
		t.Fatalf("unexpected progress: %+v", progress)
	}

	w, resp = call(t, app, http.MethodGet, fmt.Sprintf("/users/%d/responses?limit=2", student.User.ID), student.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list for user: status=%d body=%s", w.Code, w.Body.String())
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(resp.Data, &records); err != nil || len(records) != 2 {
		t.Fatalf("unexpected records: err=%v body=%s", err, w.Body.String())
	}
}

func TestErrorResponses(t *testing.T) {
	app := newTestApp(t)
	student := signup(t, app, "aluno@x.com", "aluno")
	other := signup(t, app, "other@x.com", "aluno")
	prof := signup(t, app, "prof@x.com", "professor")

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		body     interface{}
		wantCode int
		wantErr  string
	}{
		{name: "no token", method: http.MethodPost, path: "/responses", body: map[string]interface{}{}, wantCode: http.StatusUnauthorized, wantErr: "UNAUTHORIZED"},
		{name: "missing subject", method: http.MethodPost, path: "/responses", token: student.Token,
			body:     map[string]interface{}{"userId": student.User.ID, "questionId": "1", "isCorrect": true},
			wantCode: http.StatusBadRequest, wantErr: "VALIDATION_ERROR"},
		{name: "negative time", method: http.MethodPost, path: "/responses", token: student.Token,
			body:     map[string]interface{}{"userId": student.User.ID, "questionId": "1", "subject": "Math", "isCorrect": true, "timeSpentSeconds": -5},
			wantCode: http.StatusBadRequest, wantErr: "VALIDATION_ERROR"},
		{name: "other student", method: http.MethodPost, path: "/responses", token: student.Token,
			body:     map[string]interface{}{"userId": other.User.ID, "questionId": "1", "subject": "Math", "isCorrect": true},
			wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "unknown user", method: http.MethodPost, path: "/responses", token: prof.Token,
			body:     map[string]interface{}{"userId": 9999, "questionId": "1", "subject": "Math", "isCorrect": true},
			wantCode: http.StatusNotFound, wantErr: "NOT_FOUND"},
		{name: "bad user id", method: http.MethodGet, path: "/users/abc/progress", token: student.Token, wantCode: http.StatusBadRequest, wantErr: "VALIDATION_ERROR"},
		{name: "performance of unknown user", method: http.MethodGet, path: "/users/9999/performance", token: prof.Token, wantCode: http.StatusNotFound, wantErr: "NOT_FOUND"},
		{name: "list all as student", method: http.MethodGet, path: "/responses", token: student.Token, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "list all negative limit", method: http.MethodGet, path: "/responses?limit=-5", token: prof.Token, wantCode: http.StatusBadRequest, wantErr: "VALIDATION_ERROR"},
		{name: "duplicate email", method: http.MethodPost, path: "/signup",
			body:     map[string]string{"name": "Outro", "email": "aluno@x.com", "password": "secret123"},
			wantCode: http.StatusConflict, wantErr: "CONFLICT"},
		{name: "wrong password", method: http.MethodPost, path: "/login",
			body:     map[string]string{"email": "aluno@x.com", "password": "wrong-pass"},
			wantCode: http.StatusUnauthorized, wantErr: "UNAUTHORIZED"},
		{name: "missing question", method: http.MethodGet, path: "/questions/42", token: student.Token, wantCode: http.StatusNotFound, wantErr: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := call(t, app, tt.method, tt.path, tt.token, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("unexpected status: got=%d want=%d body=%s", w.Code, tt.wantCode, w.Body.String())
			}
			if resp.Success || resp.Code != tt.wantErr || resp.Error == "" {
				t.Fatalf("unexpected error body: %s", w.Body.String())
			}
			if resp.Details != "" {
				t.Fatalf("details leaked outside development mode: %s", w.Body.String())
			}
		})
	}
}

func TestProfessorListsAllAndLogout(t *testing.T) {
	app := newTestApp(t)
	student := signup(t, app, "s@x.com", "aluno")
	prof := signup(t, app, "t@x.com", "professor")

	body := map[string]interface{}{"userId": student.User.ID, "questionId": "1", "subject": "Math", "isCorrect": true}
	if w, _ := call(t, app, http.MethodPost, "/responses", student.Token, body); w.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}

	w, resp := call(t, app, http.MethodGet, "/responses", prof.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list all: %d %s", w.Code, w.Body.String())
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(resp.Data, &records); err != nil || len(records) != 1 {
		t.Fatalf("unexpected list: err=%v body=%s", err, w.Body.String())
	}

	if w, _ := call(t, app, http.MethodGet, "/me", prof.Token, nil); w.Code != http.StatusOK {
		t.Fatalf("me: %d %s", w.Code, w.Body.String())
	}
	if w, _ := call(t, app, http.MethodPost, "/logout", prof.Token, nil); w.Code != http.StatusOK {
		t.Fatalf("logout: %d %s", w.Code, w.Body.String())
	}
	if w, _ := call(t, app, http.MethodGet, "/me", prof.Token, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token accepted: %d %s", w.Code, w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	w, resp := call(t, app, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}
}

func TestNewWithoutCORSOrigins(t *testing.T) {
	app := newTestAppWith(t, func(cfg *config.Config) {
		cfg.CORS.AllowedOrigins = nil
	})

	w, resp := call(t, app, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("no origin should be allowed: got=%q", got)
	}
}
