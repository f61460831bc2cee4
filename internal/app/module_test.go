package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matheus3301/posts/internal/config"
	"github.com/matheus3301/posts/internal/lock"
	"github.com/matheus3301/posts/internal/posts"
	"github.com/matheus3301/posts/internal/profile"
	"github.com/matheus3301/posts/internal/querystore"
	"github.com/matheus3301/posts/internal/screen"
	"github.com/matheus3301/posts/internal/store"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const samplePosts = `[
	{"userId": 1, "id": 1, "title": "Hello World", "body": "first\nbody"},
	{"userId": 1, "id": 2, "title": "Another", "body": "second"}
]`

func testParams(t *testing.T, endpoint string) Params {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := config.Defaults()
	cfg.Endpoint = endpoint
	return Params{Profile: "test", Binary: "postsctl", Config: cfg, NoSkeleton: true}
}

func TestModuleValidates(t *testing.T) {
	p := testParams(t, "http://127.0.0.1:0/posts")
	if err := fx.ValidateApp(Module(p), TUI(), fx.Invoke(func(*screen.Controller) {})); err != nil {
		t.Fatalf("ValidateApp() error = %v", err)
	}
}

func TestFetcherUsesConfiguredEndpoint(t *testing.T) {
	p := testParams(t, "https://example.com/posts")
	var f *posts.HTTPFetcher
	app := fxtest.New(t, Module(p), fx.Populate(&f))
	app.RequireStart()
	defer app.RequireStop()

	if f.Endpoint() != "https://example.com/posts" {
		t.Errorf("Endpoint() = %q", f.Endpoint())
	}
}

func TestModuleFetchAndPersist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePosts))
	}))
	defer srv.Close()

	p := testParams(t, srv.URL)

	var ctrl *screen.Controller
	app := fxtest.New(t, Module(p), fx.Populate(&ctrl))
	app.RequireStart()

	ctrl.Mount(context.Background())
	ctrl.Wait()
	ctrl.SetQuery("hello")

	s := ctrl.Snapshot()
	if s.Mode != screen.ModeContent || s.Total != 2 || len(s.Visible) != 1 {
		t.Fatalf("snapshot = %+v", s)
	}

	app.RequireStop()

	db, err := store.Open(profile.DBPath(p.Profile))
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() { _ = db.Close() }()

	got, ok, err := querystore.New(db, config.DefaultStorageKey).Load(context.Background())
	if err != nil || !ok || got != "hello" {
		t.Errorf("persisted query = %q, %v, %v; want hello", got, ok, err)
	}
}

func TestModuleRespectsLock(t *testing.T) {
	p := testParams(t, "http://127.0.0.1:0/posts")
	if err := profile.EnsureDir(p.Profile); err != nil {
		t.Fatal(err)
	}
	held, err := lock.Acquire(profile.Dir(p.Profile), "posts")
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer func() { _ = held.Release() }()

	var ctrl *screen.Controller
	app := fx.New(Module(p), fx.Populate(&ctrl), fx.NopLogger)
	err = app.Err()
	if err == nil {
		t.Fatal("expected lock error")
	}
	var heldErr *lock.HeldError
	if !errors.As(err, &heldErr) {
		t.Errorf("error = %v, want *lock.HeldError", err)
	}
}
