package config

import "testing"

func TestGetEnvInt(t *testing.T) {
	t.Setenv("RELIA_TEST_INT", "250")
	if got := getEnvInt("RELIA_TEST_INT", 7); got != 250 {
		t.Errorf("getEnvInt = %d, want 250", got)
	}
	if got := getEnvInt("RELIA_TEST_MISSING", 7); got != 7 {
		t.Errorf("getEnvInt fallback = %d, want 7", got)
	}

	t.Setenv("RELIA_TEST_INT", "not-a-number")
	if got := getEnvInt("RELIA_TEST_INT", 7); got != 7 {
		t.Errorf("getEnvInt on garbage = %d, want fallback 7", got)
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("RELIA_TEST_FLOAT", "0.95")
	if got := getEnvFloat("RELIA_TEST_FLOAT", 0.5); got != 0.95 {
		t.Errorf("getEnvFloat = %v, want 0.95", got)
	}
	if got := getEnvFloat("RELIA_TEST_MISSING", 0.5); got != 0.5 {
		t.Errorf("getEnvFloat fallback = %v, want 0.5", got)
	}
}
