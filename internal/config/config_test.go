package config

import "testing"

func TestGetEnvFallsBack(t *testing.T) {
	if got := getEnv("CONFIG_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("CONFIG_TEST_SET_KEY", "value")
	if got := getEnv("CONFIG_TEST_SET_KEY", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"dev":        "development",
		"Develop":    "development",
		"local":      "development",
		"prod":       "production",
		"PRODUCTION": "production",
		"stage":      "staging",
		"test":       "test",
		" custom ":   "custom",
	}
	for input, want := range cases {
		if got := normalizeEnv(input); got != want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_URL", "postgres://localhost:5432/workouts")
	t.Setenv("APP_ENV", "dev")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.DBUrl != "postgres://localhost:5432/workouts" {
		t.Fatalf("unexpected DBUrl %q", cfg.DBUrl)
	}
	if cfg.AppEnv != "development" {
		t.Fatalf("expected normalized development, got %q", cfg.AppEnv)
	}
}
