package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, CollisionMask, cfg.Collision)
	assert.Equal(t, -7.0, cfg.Bird.FlapImpulse)
	assert.True(t, cfg.Audio.Enabled)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	t.Setenv("FLAPPY_FPS", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Pipes, cfg.Pipes)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.toml")
	data := []byte(`
fps = 30
collision = "rect"
seed = 42

[bird]
gravity = 0.5
flap_impulse = -8.0

[pipes]
gap_height = 120.0

[audio]
enabled = false

[keys]
w = "flap"
space = "none"
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, CollisionRect, cfg.Collision)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0.5, cfg.Bird.Gravity)
	assert.Equal(t, -8.0, cfg.Bird.FlapImpulse)
	assert.Equal(t, 120.0, cfg.Pipes.GapHeight)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, map[string]string{"w": "flap", "space": "none"}, cfg.Keys)

	// Untouched keys keep defaults
	assert.Equal(t, Default().Bird.X, cfg.Bird.X)
	assert.Equal(t, Default().Pipes.Spacing, cfg.Pipes.Spacing)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.toml")
	require.NoError(t, os.WriteFile(path, []byte("fsp = 30\n"), 0644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "fsp")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"FLAPPY_AUDIO_ENABLED": "false",
		"FLAPPY_MASTER_VOLUME": "150",
		"FLAPPY_FPS":           "30",
		"FLAPPY_COLLISION":     "RECT",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume, "volume clamps to 1")
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, CollisionRect, cfg.Collision)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	for _, key := range []string{"FLAPPY_AUDIO_ENABLED", "FLAPPY_MASTER_VOLUME", "FLAPPY_FPS"} {
		cfg := Default()
		err := cfg.ApplyEnv(envMap(map[string]string{key: "loud"}))
		assert.ErrorIs(t, err, ErrInvalidConfig, key)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"fps too low", func(c *Config) { c.FPS = 1 }},
		{"unknown collision", func(c *Config) { c.Collision = "circle" }},
		{"no gravity", func(c *Config) { c.Bird.Gravity = 0 }},
		{"downward flap", func(c *Config) { c.Bird.FlapImpulse = 3 }},
		{"sprite scale", func(c *Config) { c.Bird.SpriteScale = 9 }},
		{"bird off screen", func(c *Config) { c.Bird.X = -1 }},
		{"pipe width", func(c *Config) { c.Pipes.Width = 0 }},
		{"scroll speed", func(c *Config) { c.Pipes.ScrollSpeed = 0 }},
		{"spacing", func(c *Config) { c.Pipes.Spacing = c.Pipes.Width }},
		{"spacing below pipe plus bird", func(c *Config) { c.Pipes.Spacing = c.Pipes.Width + 32 }},
		{"margin", func(c *Config) { c.Pipes.Margin = -1 }},
		{"volume", func(c *Config) { c.Audio.MasterVolume = 2 }},
		{"gap smaller than bird", func(c *Config) { c.Pipes.GapHeight = 20 }},
		{"no safe band", func(c *Config) { c.Pipes.GapHeight = 400; c.Pipes.Margin = 40 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
