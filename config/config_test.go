package config

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOST_CONFIG", "PORT", "ENV", "DB_URL", "ADMIN_PASSWORD", "JWT_SECRET",
		"JWT_EXPIRY_HOURS", "ALLOWED_ORIGINS", "AMQP_URL", "OWNER_PHONE",
	} {
		if old, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, old) })
		}
	}
}

// chdir moves into dir for the test so no stray .env is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bost.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != "8080" || !c.Development() || !c.UsingDefaultPassword() {
		t.Fatalf("config = %+v", c)
	}
	if c.JWTExpiry() != 12*time.Hour {
		t.Fatalf("expiry = %v", c.JWTExpiry())
	}
}

func TestLoadFileThenEnvironment(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	path := writeFile(t, `
port: "9000"
env: production
admin_password: from-file
allowed_origins:
  - https://bostlawncare.com
owner_phone: "+17855550100"
`)
	t.Setenv("ADMIN_PASSWORD", "from-env")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != "9000" || c.Development() {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.AdminPassword != "from-env" {
		t.Fatalf("password = %q, want environment override", c.AdminPassword)
	}
	if len(c.AllowedOrigins) != 2 || c.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %v", c.AllowedOrigins)
	}
	if c.OwnerPhone != "+17855550100" {
		t.Fatalf("owner phone = %q", c.OwnerPhone)
	}
}

func TestLoadUsesConfigEnvVar(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("BOST_CONFIG", writeFile(t, "port: \"7000\"\n"))

	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != "7000" {
		t.Fatalf("port = %q", c.Port)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=6000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("PORT") })

	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != "6000" {
		t.Fatalf("port = %q, want value from .env", c.Port)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
	if _, err := Load(writeFile(t, "port: [oops")); err == nil {
		t.Fatal("malformed yaml accepted")
	}
	if _, err := Load(writeFile(t, "env: staging\n")); err == nil || !strings.Contains(err.Error(), "env must be") {
		t.Fatalf("err = %v, want env validation error", err)
	}
	t.Setenv("JWT_EXPIRY_HOURS", "soon")
	if _, err := Load(""); err == nil {
		t.Fatal("non-numeric expiry accepted")
	}
}

func TestPerformanceLoggerFlagsSlowRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := gin.New()
	r.Use(PerformanceLogger(logger))
	r.GET("/fast", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/slow", func(c *gin.Context) {
		time.Sleep(SlowRequestThreshold + 20*time.Millisecond)
		c.Status(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fast", nil))
	if !strings.Contains(buf.String(), "[PERF]") || strings.Contains(buf.String(), "slow request") {
		t.Fatalf("fast request log = %q", buf.String())
	}

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil))
	if !strings.Contains(buf.String(), "slow request") || !strings.Contains(buf.String(), "path=/slow") {
		t.Fatalf("slow request log = %q", buf.String())
	}
}
