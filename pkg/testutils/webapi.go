package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infracache "github.com/amirasaad/ledger/infra/cache"
	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/webapi"
	"github.com/gofiber/fiber/v2"
)

// TestConfig returns an application config suitable for tests: generous
// rate limits, overdraft allowed and no Redis.
func TestConfig() *config.App {
	return &config.App{
		Env:         "test",
		Server:      &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:         &config.Log{Format: "text"},
		DB:          &config.DB{Url: SQLiteURL()},
		Ledger:      &config.Ledger{AllowOverdraft: true},
		Redis:       &config.Redis{},
		RateLimit:   &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Idempotency: &config.Idempotency{TTL: time.Hour},
	}
}

// NewTestApp builds the HTTP app over a fresh sqlite store. cfg may be nil.
func NewTestApp(t testing.TB, cfg *config.App) (*fiber.App, *app.App) {
	t.Helper()
	if cfg == nil {
		cfg = TestConfig()
	}
	logger := DiscardLogger()
	deps := &app.Deps{
		Uow:      infrarepo.NewUoW(NewTestDB(t)),
		EventBus: infraeventbus.NewWithMemory(logger),
		Cache:    infracache.NewMemoryCache(),
		Logger:   logger,
	}
	a := app.New(deps, cfg)
	return webapi.SetupApp(a), a
}

// MakeRequest sends a request to app and fails the test on transport
// errors. headers are given as key/value pairs.
func MakeRequest(t testing.TB, app *fiber.App, method, path, body string, headers ...string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

// DecodeJSON reads the response body into a generic map.
func DecodeJSON(t testing.TB, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return out
}
