package cli

import (
	"os"
	"testing"

	"github.com/roboco-io/exam2hwpx/internal/config"
)

func TestSetVersion(t *testing.T) {
	oldVersion := version
	defer func() { version = oldVersion }()

	SetVersion("1.2.3")
	if version != "1.2.3" {
		t.Errorf("expected version '1.2.3', got '%s'", version)
	}
}

func TestRootCommand(t *testing.T) {
	// Test that root command exists and has expected properties
	if rootCmd.Use != "exam2hwpx" {
		t.Errorf("expected Use 'exam2hwpx', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
}

func TestVersionCommand(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("expected Use 'version', got '%s'", versionCmd.Use)
	}

	if versionCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
}

func TestProvidersCommand(t *testing.T) {
	if providersCmd.Use != "providers" {
		t.Errorf("expected Use 'providers', got '%s'", providersCmd.Use)
	}

	if providersCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
}

func TestCheckProviderStatus(t *testing.T) {
	tests := []struct {
		name     string
		provider providerInfo
		envKey   string
		envValue string
		expected string
	}{
		{
			name: "openai with key",
			provider: providerInfo{
				Name:   "openai",
				EnvKey: "OPENAI_API_KEY",
			},
			envKey:   "OPENAI_API_KEY",
			envValue: "test-key",
			expected: "✓ 설정됨",
		},
		{
			name: "anthropic without key",
			provider: providerInfo{
				Name:   "anthropic",
				EnvKey: "ANTHROPIC_API_KEY",
			},
			envKey:   "ANTHROPIC_API_KEY",
			envValue: "",
			expected: "✗ 미설정",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			oldVal := os.Getenv(tc.envKey)
			os.Setenv(tc.envKey, tc.envValue)
			defer os.Setenv(tc.envKey, oldVal)

			result := checkProviderStatus(tc.provider)
			if result != tc.expected {
				t.Errorf("expected '%s', got '%s'", tc.expected, result)
			}
		})
	}
}

func TestConvertCommandFlags(t *testing.T) {
	if convertCmd.Use != "convert <questions.json>" {
		t.Errorf("expected Use 'convert <questions.json>', got '%s'", convertCmd.Use)
	}

	// Check flags exist
	flags := []string{"template", "output", "title", "llm", "provider", "model", "verbose", "quiet"}
	for _, flag := range flags {
		if convertCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag '%s' to exist", flag)
		}
	}
}

func TestInspectCommand(t *testing.T) {
	if inspectCmd.Use != "inspect <template.hwpx>" {
		t.Errorf("expected Use 'inspect <template.hwpx>', got '%s'", inspectCmd.Use)
	}

	if inspectCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
}

func TestServeCommandFlags(t *testing.T) {
	if serveCmd.Use != "serve" {
		t.Errorf("expected Use 'serve', got '%s'", serveCmd.Use)
	}

	if serveCmd.Flags().Lookup("addr") == nil {
		t.Error("expected flag 'addr' to exist")
	}
}

func TestConfigCommand(t *testing.T) {
	if configCmd.Use != "config" {
		t.Errorf("expected Use 'config', got '%s'", configCmd.Use)
	}

	// Check subcommands exist
	subcommands := []string{"show", "init", "set", "path"}
	for _, name := range subcommands {
		found := false
		for _, cmd := range configCmd.Commands() {
			if cmd.Use == name || cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand '%s' to exist", name)
		}
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"short", "****"},
		{"12345678", "****"},
		{"sk-abcd1234efgh5678", "sk-a****5678"},
		{"AIzaSyD1234567890abcdefghijklmnop", "AIza****mnop"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result := maskAPIKey(tc.input)
			if result != tc.expected {
				t.Errorf("maskAPIKey(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestContains(t *testing.T) {
	slice := []string{"a", "b", "c"}

	if !contains(slice, "a") {
		t.Error("expected contains(slice, 'a') to be true")
	}

	if contains(slice, "d") {
		t.Error("expected contains(slice, 'd') to be false")
	}

	if contains([]string{}, "a") {
		t.Error("expected contains(empty, 'a') to be false")
	}
}

func TestBuildRegistry(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := buildRegistry(cfg, "openai", "")

	for _, name := range []string{"openai", "anthropic", "gemini"} {
		if !registry.Has(name) {
			t.Errorf("expected provider '%s' to be registered", name)
		}
	}
}

func TestBuildRegistry_ModelOverride(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := buildRegistry(cfg, "openai", "gpt-4o")

	p, err := registry.Get("openai")
	if err != nil {
		t.Fatalf("failed to get provider: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("expected provider name 'openai', got '%s'", p.Name())
	}
}

func TestBuildRegistry_SkipsUnknownProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Providers["mystery"] = config.Provider{APIKey: "key"}

	registry := buildRegistry(cfg, "openai", "")
	if registry.Has("mystery") {
		t.Error("unknown provider names must be skipped")
	}
}
