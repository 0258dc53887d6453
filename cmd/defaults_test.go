package cmd

import (
	"os"
	"testing"
	"time"

	"github.com/mlihgenel/videotrim-cli/internal/config"
	"github.com/spf13/cobra"
)

func TestApplyRootDefaultsEnvOverridesConfig(t *testing.T) {
	prevCfg := activeProjectConfig
	defer func() { activeProjectConfig = prevCfg }()

	activeProjectConfig = &config.ProjectConfig{
		OutputDir:   "/from-config",
		Zoom:        2,
		MinDuration: config.Duration(4 * time.Second),
	}
	outputDir = ""
	zoom = 0
	minDurationRaw = ""

	t.Setenv(envOutputDir, "/from-env")
	t.Setenv(envZoom, "6")

	c := newTestRootCommand()
	if err := applyRootDefaults(c); err != nil {
		t.Fatalf("applyRootDefaults failed: %v", err)
	}

	if outputDir != "/from-env" {
		t.Fatalf("expected env output dir, got %s", outputDir)
	}
	if zoom != 6 {
		t.Fatalf("expected env zoom 6, got %v", zoom)
	}
	if minDurationRaw != "4s" {
		t.Fatalf("expected project min-duration 4s, got %q", minDurationRaw)
	}
}

func TestApplyRootDefaultsRespectsChangedFlags(t *testing.T) {
	prevCfg := activeProjectConfig
	defer func() { activeProjectConfig = prevCfg }()

	activeProjectConfig = &config.ProjectConfig{
		OutputDir: "/from-config",
		Codec:     "reencode",
	}
	outputDir = "/manual"
	codec = "copy"

	c := newTestRootCommand()
	if err := c.Flags().Set("output-dir", "/manual"); err != nil {
		t.Fatalf("set output-dir flag failed: %v", err)
	}
	if err := c.Flags().Set("codec", "copy"); err != nil {
		t.Fatalf("set codec flag failed: %v", err)
	}

	if err := applyRootDefaults(c); err != nil {
		t.Fatalf("applyRootDefaults failed: %v", err)
	}

	if outputDir != "/manual" {
		t.Fatalf("expected manual output dir unchanged, got %s", outputDir)
	}
	if codec != "copy" {
		t.Fatalf("expected manual codec unchanged, got %s", codec)
	}
}

func TestApplyRootDefaultsProjectThumbnails(t *testing.T) {
	prevCfg := activeProjectConfig
	defer func() { activeProjectConfig = prevCfg }()

	count := 0
	activeProjectConfig = &config.ProjectConfig{Thumbnails: &count}
	thumbnails = defaultThumbnails

	if err := applyRootDefaults(newTestRootCommand()); err != nil {
		t.Fatalf("applyRootDefaults failed: %v", err)
	}
	if thumbnails != 0 {
		t.Fatalf("expected project thumbnails 0, got %d", thumbnails)
	}
}

func newTestRootCommand() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	for _, name := range []string{"min-duration", "codec", "on-conflict", "output-dir"} {
		c.Flags().String(name, "", "")
	}
	c.Flags().Float64("zoom", 0, "")
	c.Flags().Int("quality", 0, "")
	c.Flags().Int("thumbs", 0, "")
	return c
}

func TestReadEnvHelpers(t *testing.T) {
	t.Setenv("X_INT", "12")
	if v, ok := readEnvInt("X_INT"); !ok || v != 12 {
		t.Fatalf("unexpected int parse result")
	}

	t.Setenv("X_FLOAT", "2.5")
	if v, ok := readEnvFloat("X_FLOAT"); !ok || v != 2.5 {
		t.Fatalf("unexpected float parse result")
	}

	t.Setenv("X_BAD", "abc")
	if _, ok := readEnvInt("X_BAD"); ok {
		t.Fatalf("expected int parse failure")
	}

	_ = os.Unsetenv("X_INT")
	_ = os.Unsetenv("X_FLOAT")
}

func TestParseMinDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"2.5s", 2500 * time.Millisecond},
		{"4", 4 * time.Second},
		{"00:00:03", 3 * time.Second},
		{"1500ms", 1500 * time.Millisecond},
	}
	for _, tt := range tests {
		got, err := parseMinDuration(tt.raw)
		if err != nil {
			t.Fatalf("parseMinDuration(%q) failed: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("parseMinDuration(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}

	if _, err := parseMinDuration("-2s"); err == nil {
		t.Fatalf("expected negative min-duration error")
	}
}

func TestParseOptionalTime(t *testing.T) {
	got, err := parseOptionalTime("  ")
	if err != nil || got != nil {
		t.Fatalf("expected nil for blank input, got %v %v", got, err)
	}
	got, err = parseOptionalTime("01:30")
	if err != nil || got == nil || *got != 90*time.Second {
		t.Fatalf("expected 90s, got %v %v", got, err)
	}
	if _, err := parseOptionalTime("abc"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyRootDefaultsUserOutputDir(t *testing.T) {
	prevCfg := activeProjectConfig
	defer func() { activeProjectConfig = prevCfg }()

	t.Setenv("HOME", t.TempDir())
	t.Setenv(envOutputDir, "")
	if err := config.SetDefaultOutputDir("/from-user"); err != nil {
		t.Fatalf("SetDefaultOutputDir failed: %v", err)
	}
	activeProjectConfig = &config.ProjectConfig{}
	outputDir = ""

	if err := applyRootDefaults(newTestRootCommand()); err != nil {
		t.Fatalf("applyRootDefaults failed: %v", err)
	}
	if outputDir != "/from-user" {
		t.Fatalf("expected user output dir, got %q", outputDir)
	}
}
