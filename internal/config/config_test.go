package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMinimal(t *testing.T) {
	cfg, err := Parse([]byte("database:\n  driver: sqlite\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Database.Path != "fleet.db" {
		t.Errorf("path default = %q, want fleet.db", cfg.Database.Path)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port default = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Reconciler.Schedule != "0 * * * *" {
		t.Errorf("schedule default = %q, want hourly", cfg.Reconciler.Schedule)
	}
}

func TestParseFull(t *testing.T) {
	data := `
database:
  driver: mysql
  host: db.internal
  port: 3307
  name: fleet_prod
  user: fleet
server:
  port: 9090
reconciler:
  schedule: "*/15 * * * *"
  enabled: true
notify:
  slack:
    bot_token: xoxb-test
    channel: "#fleet-alerts"
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Database.Driver != "mysql" || cfg.Database.Host != "db.internal" || cfg.Database.Port != 3307 {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if !cfg.Reconciler.Enabled || cfg.Reconciler.Schedule != "*/15 * * * *" {
		t.Errorf("unexpected reconciler config: %+v", cfg.Reconciler)
	}
	if cfg.Notify.Slack.Channel != "#fleet-alerts" {
		t.Errorf("slack channel = %q", cfg.Notify.Slack.Channel)
	}
}

func TestParseRejectsUnknownDriver(t *testing.T) {
	_, err := Parse([]byte("database:\n  driver: oracle\n"))
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
	if !strings.Contains(err.Error(), "oracle") {
		t.Errorf("error should name the bad driver: %v", err)
	}
}

func TestParseRejectsTokenWithoutChannel(t *testing.T) {
	_, err := Parse([]byte("notify:\n  slack:\n    bot_token: xoxb-test\n"))
	if err == nil {
		t.Fatal("expected error for slack token without channel")
	}
	_, err = Parse([]byte("notify:\n  discord:\n    bot_token: abc\n"))
	if err == nil {
		t.Fatal("expected error for discord token without channel_id")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("database: [")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9999\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Server.Port)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Database.Driver != "sqlite" || cfg.Server.Port != 8080 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Reconciler.Enabled {
		t.Error("reconciler should default to disabled")
	}
}
