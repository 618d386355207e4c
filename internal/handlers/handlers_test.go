package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mosdac/assistant/internal/assistant"
	"github.com/mosdac/assistant/internal/clock"
	"github.com/mosdac/assistant/internal/dashboard"
	"github.com/mosdac/assistant/internal/memory"
	"github.com/mosdac/assistant/internal/notify"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

type testServer struct {
	router  chi.Router
	clock   *clock.Manual
	monitor *dashboard.Monitor
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := zerolog.Nop()
	manual := clock.NewManual()
	notifier := notify.New(logger, 10)
	engine := assistant.NewEngine(nil)
	sessions := assistant.NewSessions(engine, memory.NewBuffer(),
		assistant.WithScheduler(manual), assistant.WithNotifier(notifier))
	monitor := dashboard.NewMonitor(constSource(0.5))

	graphs, err := NewGraphHandler(logger)
	require.NoError(t, err)
	chat := NewChatHandler(sessions, logger)
	dash := NewDashboardHandler(monitor, notifier)

	r := chi.NewRouter()
	r.Post("/sessions", chat.Create)
	r.Get("/sessions/{id}", chat.Get)
	r.Post("/sessions/{id}/messages", chat.Submit)
	r.Delete("/sessions/{id}", chat.Delete)
	r.Method(http.MethodPost, "/classify", NewClassifyHandler(engine, logger))
	r.Get("/graphs/{variant}", graphs.Get)
	r.Post("/graphs/{variant}/click", graphs.Click)
	r.Get("/graphs/{variant}/panel", graphs.Panel)
	r.Get("/graphs/{variant}/render.{format}", graphs.Render)
	r.Get("/dashboard", dash.Get)
	r.Post("/dashboard/live", dash.SetLive)
	r.Get("/notifications", dash.Notifications)
	r.Get("/features", FeaturesHandler)
	r.Get("/features/{id}", FeatureHandler)

	return &testServer{router: r, clock: manual, monitor: monitor}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
