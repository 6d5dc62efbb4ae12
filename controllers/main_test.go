package controllers_test

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"

	"muhibacademy/config"
	"muhibacademy/i18n"
	"muhibacademy/notify"
	"muhibacademy/routes"
	"muhibacademy/storage"
	"muhibacademy/utils"
)

type testEnv struct {
	app   *fiber.App
	store *storage.Store
	cfg   *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		DBDriver:      "sqlite",
		SQLitePath:    filepath.Join(t.TempDir(), "test.db"),
		SessionSecret: "testsecret",
		UploadDir:     t.TempDir(),
	}
	logger := log.New(io.Discard, "", 0)

	require.NoError(t, i18n.Init())

	store, err := storage.Open(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, store.Migrate())
	require.NoError(t, store.Seed())

	engine := html.New("../templates", ".html")
	engine.AddFunc("t", i18n.Translate)

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	// An unconfigured notifier: sends are no-ops, exactly like production
	// without Telegram credentials.
	notifier := notify.New("", "", logger)

	routes.SetupRoutes(app, store, cfg, notifier, logger)
	return &testEnv{app: app, store: store, cfg: cfg}
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// loginAdmin authenticates with the seeded credentials and returns the
// session cookie value.
func loginAdmin(t *testing.T, env *testEnv) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", "admin")
	form.Set("password", "admin123")

	resp, err := env.app.Test(formRequest("/admin/login", form), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin/dashboard", resp.Header.Get("Location"))

	for _, cookie := range resp.Cookies() {
		if cookie.Name == utils.AdminTokenCookie {
			return cookie.Value
		}
	}
	t.Fatal("no admin session cookie in login response")
	return ""
}

func withSession(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: utils.AdminTokenCookie, Value: token})
	return req
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
