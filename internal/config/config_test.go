package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CHATKIT_API_BASE", "")
	t.Setenv("CHATKIT_WORKFLOW_ID", "")
	t.Setenv("CHATKIT_SCRIPT_URL", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("ALLOWED_ORIGIN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Server.Addr)
	}
	if cfg.ChatKit.APIBase != DefaultAPIBase {
		t.Fatalf("unexpected api base %q", cfg.ChatKit.APIBase)
	}
	if cfg.ChatKit.ScriptURL != DefaultScriptURL {
		t.Fatalf("unexpected script url %q", cfg.ChatKit.ScriptURL)
	}
	if cfg.ChatKit.SecureCookies {
		t.Fatal("secure cookies must be off outside production")
	}
}

func TestLoadPortForms(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9090")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Fatalf("expected host:port pass-through, got %q", cfg.Server.Addr)
	}

	t.Setenv("PORT", "bad port")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for PORT with spaces")
	}
}

func TestLoadProductionMode(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.ChatKit.SecureCookies {
		t.Fatal("expected secure cookies in production")
	}
}
