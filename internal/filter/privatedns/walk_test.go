package privatedns

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
	"github.com/lite-lake/infra-dnsfilters/internal/domain/entity"
)

func load(t *testing.T, src string) any {
	t.Helper()
	var v any
	if err := yaml.Unmarshal([]byte(src), &v); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	return v
}

func TestWalk(t *testing.T) {
	zone := load(t, `
- domain: domain.com
  subdomains:
    - subdomain: "@"
      records:
        - type: A
          value: 127.0.0.1
        - type: TXT
          value: v=spf1 mx -all
    - subdomain: mail
      records:
        - type: A
          value: [127.0.0.1, 127.0.0.2]
- domain: other.com
  subdomains:
    - subdomain: www
      records:
        - type: cname
          value: other.com.
          ttl: 1h
          comment: web
          proxied: true
`)

	got, err := Walk(zone)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []entity.WalkEntry{
		{Domain: "domain.com", Subdomain: "@", Record: map[string]any{"type": "A", "value": "127.0.0.1"}},
		{Domain: "domain.com", Subdomain: "@", Record: map[string]any{"type": "TXT", "value": "v=spf1 mx -all"}},
		{Domain: "domain.com", Subdomain: "mail", Record: map[string]any{"type": "A", "value": []any{"127.0.0.1", "127.0.0.2"}}},
		{Domain: "other.com", Subdomain: "www", Record: map[string]any{
			"type": "cname", "value": "other.com.", "ttl": "1h", "comment": "web", "proxied": true,
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_CountsEveryTriple(t *testing.T) {
	var zone []any
	total := 0
	for d := 0; d < 3; d++ {
		var subdomains []any
		for s := 0; s < d+1; s++ {
			var records []any
			for r := 0; r < s+2; r++ {
				records = append(records, map[string]any{"type": "A", "value": "10.0.0.1"})
				total++
			}
			subdomains = append(subdomains, map[string]any{"subdomain": "s", "records": records})
		}
		zone = append(zone, map[string]any{"domain": "d.com", "subdomains": subdomains})
	}

	got, err := Walk(zone)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(got) != total {
		t.Errorf("Walk() returned %d entries, want %d", len(got), total)
	}
}

func TestWalk_SkipsMissingKeys(t *testing.T) {
	zone := load(t, `
- domain: bare.com
- domain: partial.com
  subdomains:
    - subdomain: norecords
`)

	got, err := Walk(zone)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Walk() = %v, want no entries", got)
	}
}

func TestWalk_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{name: "mapping", input: map[string]any{"domain": "domain.com"}},
		{name: "string", input: "domain.com"},
		{name: "nil", input: nil},
		{name: "domain without name", input: []any{map[string]any{"subdomains": []any{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Walk(tt.input)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("Walk() error = %v, want %v", err, domain.ErrInvalidInput)
			}
		})
	}
}

func TestModule_Filters(t *testing.T) {
	filters := Module{}.Filters()
	f, ok := filters[WalkFilterName]
	if !ok {
		t.Fatalf("Filters() missing %s", WalkFilterName)
	}

	out, err := f([]any{})
	if err != nil {
		t.Fatalf("%s() error = %v", WalkFilterName, err)
	}
	if entries, ok := out.([]entity.WalkEntry); !ok || len(entries) != 0 {
		t.Errorf("%s() = %#v, want empty []entity.WalkEntry", WalkFilterName, out)
	}

	if _, err := f([]any{}, "extra"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("%s() with extra argument error = %v, want %v", WalkFilterName, err, domain.ErrInvalidArgument)
	}
}
