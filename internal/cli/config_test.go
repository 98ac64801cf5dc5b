package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/randpix/pkg/cache"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[generate]
size = 5
symmetry = "quad"
color_scheme = "warm"
fill_factor = 0.0
formats = ["svg"]

[cache]
backend = "none"
ttl = "72h"
prefix = "edge-1:"

[server]
addr = ":9090"
timeout = "3s"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	gen := cfg.Generate
	if gen.Size != 5 || gen.Symmetry != "quad" {
		t.Errorf("generate = %+v", gen.Options)
	}
	if gen.Palette != "warm" {
		t.Errorf("color_scheme alias: palette = %q", gen.Palette)
	}
	if gen.FillFactor == nil || *gen.FillFactor != 0 {
		t.Errorf("explicit zero fill factor lost: %v", gen.FillFactor)
	}
	if cfg.Cache.Backend != backendNone || cfg.Cache.TTL.Duration != 72*time.Hour || cfg.Cache.Prefix != "edge-1:" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.Timeout.Duration != 3*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
}

func TestLoadConfigPaletteWinsOverAlias(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "[generate]\npalette = \"cool\"\ncolor_scheme = \"warm\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Generate.Palette != "cool" {
		t.Errorf("palette = %q, want cool", cfg.Generate.Palette)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[generate]\nsizee = 5\n"},
		{"bad toml", "[generate\n"},
		{"bad duration", "[cache]\nttl = \"soon\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tt.data)); err == nil {
				t.Error("loadConfig should fail")
			}
		})
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("explicit missing config should fail")
	}
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("missing default config should be ignored: %v", err)
	}
	if cfg.Generate.Size != 0 || cfg.Cache.Backend != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestNewCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     cacheConfig
		noCache bool
		check   func(cache.Cache) bool
		wantErr bool
	}{
		{"no-cache flag", cacheConfig{Backend: backendFile, Dir: dir}, true, isNull, false},
		{"none", cacheConfig{Backend: backendNone}, false, isNull, false},
		{"file", cacheConfig{Backend: backendFile, Dir: dir}, false, isFile, false},
		{"default is file", cacheConfig{Dir: dir}, false, isFile, false},
		{"unknown", cacheConfig{Backend: "memcached"}, false, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := newCache(ctx, tt.cfg, tt.noCache)
			if (err != nil) != tt.wantErr {
				t.Fatalf("newCache error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				defer c.Close()
				if !tt.check(c) {
					t.Errorf("newCache returned %T", c)
				}
			}
		})
	}
}

func isNull(c cache.Cache) bool {
	_, ok := c.(cache.NullCache)
	return ok
}

func isFile(c cache.Cache) bool {
	_, ok := c.(*cache.FileCache)
	return ok
}

func TestExampleFiles(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("..", "..", "examples", "config.toml"))
	if err != nil {
		t.Fatalf("examples/config.toml: %v", err)
	}
	opts := cfg.Generate.Options.Copy()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("example generate section invalid: %v", err)
	}

	path, err := filepath.Abs(filepath.Join("..", "..", "examples", "palettes", "sunset.toml"))
	if err != nil {
		t.Fatal(err)
	}
	opts = cfg.Generate.Options.Copy()
	opts.Palette, opts.PaletteFile = "", path
	if _, err := opts.Config(); err != nil {
		t.Errorf("example palette invalid: %v", err)
	}
}
