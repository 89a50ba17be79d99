package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Workers int    `env:"TEST_WORKERS" envDefault:"4"`
	Dice    string `env:"TEST_DICE" envDefault:"r,b"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Workers != 4 {
		t.Fatalf("expected default workers 4, got %d", cfg.Workers)
	}
	if cfg.Dice != "r,b" {
		t.Fatalf("expected default dice r,b, got %q", cfg.Dice)
	}
}

func TestParseEnvAppliesPrefix(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("NONTRANSITIVE_TEST_DICE", "y,m")
	t.Setenv("TEST_WORKERS", "9")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Dice != "y,m" {
		t.Fatalf("expected prefixed dice y,m, got %q", cfg.Dice)
	}
	if cfg.Workers != 4 {
		t.Fatalf("expected unprefixed variable to be ignored, got %d", cfg.Workers)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("NONTRANSITIVE_TEST_WORKERS", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
