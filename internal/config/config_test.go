package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Default()
	if c != want {
		t.Errorf("Load() = %+v, want defaults %+v", c, want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saved := Config{MaxN: 5000, TableBound: 60_000, Workers: 3}
	if err := Save(saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c != saved {
		t.Errorf("Load() = %+v, want %+v", c, saved)
	}
}

func TestEnvOverrides(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		get  func(Config) int
		want int
	}{
		{
			name: "max n",
			key:  "SIEVETAIL_MAX_N",
			val:  "42000",
			get:  func(c Config) int { return c.MaxN },
			want: 42000,
		},
		{
			name: "table bound",
			key:  "SIEVETAIL_TABLE_BOUND",
			val:  "123456",
			get:  func(c Config) int { return c.TableBound },
			want: 123456,
		},
		{
			name: "workers",
			key:  "SIEVETAIL_WORKERS",
			val:  "8",
			get:  func(c Config) int { return c.Workers },
			want: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			t.Setenv(tt.key, tt.val)

			c, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := tt.get(c); got != tt.want {
				t.Errorf("Load() %s = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := Save(Config{MaxN: 1000, TableBound: 10_000, Workers: 1}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	t.Setenv("SIEVETAIL_MAX_N", "2000")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.MaxN != 2000 {
		t.Errorf("env override lost: MaxN = %d, want 2000", c.MaxN)
	}
	if c.TableBound != 10_000 {
		t.Errorf("file value lost: TableBound = %d, want 10000", c.TableBound)
	}
}
