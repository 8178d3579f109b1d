package beget

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func load(t *testing.T, src string) any {
	t.Helper()
	var v any
	if err := yaml.Unmarshal([]byte(src), &v); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	return v
}

func p(value string, priority int) Record {
	return prioritized(value, priority)
}
