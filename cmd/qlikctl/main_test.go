package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeTenant serves just enough of the REST surface for the command tests:
// one shared-space app named Sales with a two tab script.
type fakeTenant struct {
	srv *httptest.Server

	publishedScript  string
	publishedMessage string
	validatedScript  string
}

func newFakeTenant(t *testing.T) *fakeTenant {
	t.Helper()
	ft := &fakeTenant{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") != "Sales" {
			w.Write([]byte(`{"data":[]}`))
			return
		}
		w.Write([]byte(`{"data":[{"id":"item-1","name":"Sales","resourceId":"app-1","resourceType":"app","spaceId":"sp-1"}]}`))
	})
	mux.HandleFunc("GET /spaces/sp-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"sp-1","name":"Dev","type":"shared"}`))
	})
	mux.HandleFunc("GET /apps/app-1/scripts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"scripts":[{"scriptId":"s-1"}]}`))
	})
	mux.HandleFunc("GET /apps/app-1/scripts/s-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"script":"SET a=1;\r\r///$tab Extract\rLOAD * FROM x;"}`))
	})
	mux.HandleFunc("POST /apps/app-1/scripts", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Script         string `json:"script"`
			VersionMessage string `json:"versionMessage"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ft.publishedScript = body.Script
		ft.publishedMessage = body.VersionMessage
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("POST /apps/validatescript", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Script string `json:"script"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ft.validatedScript = body.Script
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("GET /reloads/r-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"r-1","appId":"app-1","status":"SUCCEEDED","log":"done\n"}`))
	})
	ft.srv = httptest.NewServer(mux)
	t.Cleanup(ft.srv.Close)
	return ft
}

// runCommand executes the root command with a tenant and scripts dir wired
// through the environment, against a config path that does not exist.
func runCommand(t *testing.T, tenantURL, scriptsDir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("QLIK_TENANT_URL", tenantURL)
	t.Setenv("QLIK_API_KEY", "test-key")
	t.Setenv("QLIK_SCRIPTS_DIR", scriptsDir)

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append(args, "-c", filepath.Join(t.TempDir(), "missing.yaml")))
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestGetWritesTabFiles(t *testing.T) {
	ft := newFakeTenant(t)
	scriptsDir := t.TempDir()

	out, err := runCommand(t, ft.srv.URL, scriptsDir, "get", "Sales")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	dir := filepath.Join(scriptsDir, "Sales", "app-1")
	main, err := os.ReadFile(filepath.Join(dir, "Main.qvs"))
	if err != nil {
		t.Fatalf("read Main.qvs: %v", err)
	}
	if string(main) != "SET a=1;" {
		t.Fatalf("Main.qvs = %q", main)
	}
	extract, err := os.ReadFile(filepath.Join(dir, "0___Extract.qvs"))
	if err != nil {
		t.Fatalf("read 0___Extract.qvs: %v", err)
	}
	if string(extract) != "LOAD * FROM x;" {
		t.Fatalf("0___Extract.qvs = %q", extract)
	}
	if !strings.Contains(out, "Main.qvs") || !strings.Contains(out, "0___Extract.qvs") {
		t.Fatalf("output does not list written files: %q", out)
	}
}

func TestSetPublishesCombinedScript(t *testing.T) {
	ft := newFakeTenant(t)
	scriptsDir := t.TempDir()
	dir := filepath.Join(scriptsDir, "Sales", "app-1")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "Main.qvs"), "SET a=1;")
	writeFile(t, filepath.Join(dir, "0___Extract.qvs"), "LOAD * FROM x;")

	out, err := runCommand(t, ft.srv.URL, scriptsDir, "set", "Sales", "-m", "release 3")
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	want := "SET a=1;\r\r///$tab Extract\rLOAD * FROM x;"
	if ft.publishedScript != want {
		t.Fatalf("published script = %q, want %q", ft.publishedScript, want)
	}
	if ft.publishedMessage != "release 3" {
		t.Fatalf("version message = %q", ft.publishedMessage)
	}
	if ft.validatedScript != want {
		t.Fatalf("validated script = %q", ft.validatedScript)
	}
	if !strings.Contains(out, "Sales script set successfully") {
		t.Fatalf("output = %q", out)
	}
}

func TestSetWithoutLocalFilesFails(t *testing.T) {
	ft := newFakeTenant(t)
	_, err := runCommand(t, ft.srv.URL, t.TempDir(), "set", "Sales")
	if err == nil {
		t.Fatal("expected error for missing script directory")
	}
}

func TestRemRemovesScriptDir(t *testing.T) {
	ft := newFakeTenant(t)
	scriptsDir := t.TempDir()
	dir := filepath.Join(scriptsDir, "Sales", "app-1")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "Main.qvs"), "SET a=1;")

	if _, err := runCommand(t, ft.srv.URL, scriptsDir, "rem", "Sales"); err != nil {
		t.Fatalf("rem: %v", err)
	}
	if _, err := os.Stat(filepath.Join(scriptsDir, "Sales")); !os.IsNotExist(err) {
		t.Fatalf("expected app directory to be pruned, stat err = %v", err)
	}
}

func TestLoadResumesExistingReload(t *testing.T) {
	ft := newFakeTenant(t)
	out, err := runCommand(t, ft.srv.URL, t.TempDir(), "load", "--status", "r-1", "--delta")
	if err != nil {
		t.Fatalf("load --status: %v", err)
	}
	if !strings.Contains(out, "done") {
		t.Fatalf("output missing reload log: %q", out)
	}
	if !strings.Contains(out, "reload r-1 completed successfully") {
		t.Fatalf("output = %q", out)
	}
}

func TestLoadRequiresAppOrStatus(t *testing.T) {
	ft := newFakeTenant(t)
	_, err := runCommand(t, ft.srv.URL, t.TempDir(), "load")
	if err == nil || !strings.Contains(err.Error(), "app name required") {
		t.Fatalf("err = %v", err)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"config", "init", "-c", path})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	root = newRootCmd()
	buf.Reset()
	root.SetOut(&buf)
	root.SetArgs([]string{"config", "path", "-c", path})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(buf.String()) != path {
		t.Fatalf("config path output = %q", buf.String())
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(buf.String()) == "" {
		t.Fatal("version printed nothing")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
