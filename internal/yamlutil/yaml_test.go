package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2confluence/internal/yamlutil"
)

type testConfig struct {
	Name  string   `yaml:"name"`
	Count int      `yaml:"count"`
	Tags  []string `yaml:"tags"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		data := []byte("name: demo\ncount: 3\ntags:\n  - a\n  - b\n")
		if err := yamlutil.Unmarshal(data, &cfg); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if cfg.Name != "demo" || cfg.Count != 3 || len(cfg.Tags) != 2 {
			t.Errorf("Unmarshal() = %+v", cfg)
		}
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.Unmarshal(nil, &cfg); err != nil {
			t.Errorf("Unmarshal(nil) error = %v", err)
		}
		if err := yamlutil.Unmarshal([]byte("\n  \n"), &cfg); err != nil {
			t.Errorf("Unmarshal(whitespace) error = %v", err)
		}
		if cfg.Name != "" || cfg.Count != 0 || cfg.Tags != nil {
			t.Errorf("empty input mutated destination: %+v", cfg)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.Unmarshal([]byte("name: x"), nil)
		if !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		data := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
		err := yamlutil.Unmarshal(data, &cfg)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.Unmarshal([]byte("name: [unclosed"), &cfg); err == nil {
			t.Error("Unmarshal() should fail on malformed input")
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := yamlutil.UnmarshalStrict([]byte("name: x\nunknown: y\n"), &cfg)
	if err == nil {
		t.Error("UnmarshalStrict() should reject unknown fields")
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Marshal(testConfig{Name: "demo", Count: 1})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "name: demo") {
		t.Errorf("Marshal() = %s", data)
	}
}
