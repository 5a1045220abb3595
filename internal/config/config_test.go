package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pageserve.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:3000" || cfg.Static.Root != "./static" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Echo.BodyLimit != 2<<20 {
		t.Fatalf("unexpected body limit: %d", cfg.Echo.BodyLimit)
	}
}

func TestLoadFrom_YAMLOverridesDefaults(t *testing.T) {
	p := writeYAML(t, `
server:
  addr: "0.0.0.0:8080"
  write_timeout: 30s
static:
  root: /srv/www
`)
	cfg, err := LoadFrom(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:8080" {
		t.Fatalf("addr not applied: %s", cfg.Server.Addr)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Fatalf("write timeout not applied: %s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("read timeout default lost: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Static.Root != "/srv/www" {
		t.Fatalf("root not applied: %s", cfg.Static.Root)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "server: [", "config yaml"},
		{"empty addr", "server:\n  addr: \"\"\n", "server.addr"},
		{"empty root", "static:\n  root: \"\"\n", "static.root"},
		{"zero body limit", "echo:\n  body_limit: 0\n", "echo.body_limit"},
		{"negative timeout", "server:\n  idle_timeout: -1s\n", "server.idle_timeout"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFrom(writeYAML(t, tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
