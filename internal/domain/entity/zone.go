package entity

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
	"github.com/lite-lake/infra-dnsfilters/internal/domain/shape"
)

// Zone is the generic private DNS description: domains in declaration order.
type Zone []Domain

type Domain struct {
	Name       string      `yaml:"domain" json:"domain"`
	Subdomains []Subdomain `yaml:"subdomains,omitempty" json:"subdomains,omitempty"`
}

// Subdomain keeps its records as the mappings they were decoded from;
// DecodeDNSRecord gives the typed view where one is needed.
type Subdomain struct {
	Name    string           `yaml:"subdomain" json:"subdomain"`
	Records []map[string]any `yaml:"records,omitempty" json:"records,omitempty"`
}

// WalkEntry is one (domain, subdomain, record) combination of a Zone. Record
// is the record mapping as given.
type WalkEntry struct {
	Domain    string         `yaml:"domain" json:"domain"`
	Subdomain string         `yaml:"subdomain" json:"subdomain"`
	Record    map[string]any `yaml:"record" json:"record"`
}

var (
	domainRegex    = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*\.?$`)
	subdomainRegex = regexp.MustCompile(`^(\*|[a-zA-Z0-9_]([a-zA-Z0-9_-]{0,61}[a-zA-Z0-9_])?)(\.[a-zA-Z0-9_]([a-zA-Z0-9_-]{0,61}[a-zA-Z0-9_])?)*$`)
)

func DecodeZone(v any) (Zone, error) {
	items, err := shape.List(v, "")
	if err != nil {
		return nil, err
	}
	zone := make(Zone, 0, len(items))
	for i, item := range items {
		d, err := decodeDomain(item, shape.Index("", i))
		if err != nil {
			return nil, err
		}
		zone = append(zone, d)
	}
	return zone, nil
}

func decodeDomain(v any, path string) (Domain, error) {
	m, err := shape.Map(v, path)
	if err != nil {
		return Domain{}, err
	}
	name, err := shape.String(m, "domain", path)
	if err != nil {
		return Domain{}, err
	}
	d := Domain{Name: name}
	if raw, ok := m["subdomains"]; ok && raw != nil {
		d.Subdomains, err = DecodeSubdomains(raw, shape.Key(path, "subdomains"))
		if err != nil {
			return Domain{}, err
		}
	}
	return d, nil
}

// DecodeSubdomains reads the subdomains list of a single domain.
func DecodeSubdomains(v any, path string) ([]Subdomain, error) {
	items, err := shape.List(v, path)
	if err != nil {
		return nil, err
	}
	subdomains := make([]Subdomain, 0, len(items))
	for i, item := range items {
		s, err := decodeSubdomain(item, shape.Index(path, i))
		if err != nil {
			return nil, err
		}
		subdomains = append(subdomains, s)
	}
	return subdomains, nil
}

func decodeSubdomain(v any, path string) (Subdomain, error) {
	m, err := shape.Map(v, path)
	if err != nil {
		return Subdomain{}, err
	}
	name, err := shape.String(m, "subdomain", path)
	if err != nil {
		return Subdomain{}, err
	}
	s := Subdomain{Name: name}
	raw, ok := m["records"]
	if !ok || raw == nil {
		return s, nil
	}
	recordsPath := shape.Key(path, "records")
	items, err := shape.List(raw, recordsPath)
	if err != nil {
		return Subdomain{}, err
	}
	s.Records = make([]map[string]any, 0, len(items))
	for i, item := range items {
		r, err := shape.Map(item, shape.Index(recordsPath, i))
		if err != nil {
			return Subdomain{}, err
		}
		s.Records = append(s.Records, r)
	}
	return s, nil
}

// Walk flattens the zone in declaration order.
func (z Zone) Walk() []WalkEntry {
	result := []WalkEntry{}
	for _, d := range z {
		for _, s := range d.Subdomains {
			for _, r := range s.Records {
				result = append(result, WalkEntry{
					Domain:    d.Name,
					Subdomain: s.Name,
					Record:    r,
				})
			}
		}
	}
	return result
}

// Validate collects every problem in the zone rather than stopping at the
// first one.
func (z Zone) Validate() error {
	var errs []error
	for _, d := range z {
		if err := d.Validate(); err != nil {
			errs = append(errs, domain.WrapEntity("domain", d.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (d *Domain) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: domain name is required", domain.ErrInvalidValue)
	}
	if !domainRegex.MatchString(d.Name) {
		return fmt.Errorf("%w: invalid domain format %s", domain.ErrInvalidValue, d.Name)
	}
	var errs []error
	for i := range d.Subdomains {
		if err := d.Subdomains[i].Validate(); err != nil {
			errs = append(errs, domain.WrapEntity("subdomain", d.Subdomains[i].Name, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Subdomain) Validate() error {
	if s.Name == "" {
		return domain.RequiredField("subdomain")
	}
	if s.Name != "@" && !subdomainRegex.MatchString(s.Name) {
		return fmt.Errorf("%w: invalid subdomain format %s", domain.ErrInvalidValue, s.Name)
	}
	var errs []error
	for i, raw := range s.Records {
		path := shape.Index("records", i)
		r, err := DecodeDNSRecord(raw, path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}
	return errors.Join(errs...)
}
