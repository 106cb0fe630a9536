package config

import (
	"bytes"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"MASKS_TEST_PORT" envDefault:"123"`
}

type prefixedTestConfig struct {
	Level string `env:"TEST_LOG_LEVEL" envDefault:"info"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("port = %d, want 123", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MASKS_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefixReadsPrefixedName(t *testing.T) {
	t.Setenv("MASKS_TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_LEVEL", "error")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Level != "debug" {
		t.Fatalf("level = %q, want %q", cfg.Level, "debug")
	}
}

func TestExitfWritesMessageAndExits(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	prevErr, prevExit := stderr, exitFn
	stderr = &buf
	exitFn = func(c int) { code = c }
	t.Cleanup(func() {
		stderr = prevErr
		exitFn = prevExit
	})

	Exitf("fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "fatal: something broke\n" {
		t.Fatalf("stderr = %q, want %q", got, "fatal: something broke\n")
	}
}
