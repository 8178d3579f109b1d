package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
	"github.com/lite-lake/infra-dnsfilters/internal/domain/shape"
)

type DNSRecordType string

const (
	DNSRecordTypeA     DNSRecordType = "A"
	DNSRecordTypeAAAA  DNSRecordType = "AAAA"
	DNSRecordTypeCNAME DNSRecordType = "CNAME"
	DNSRecordTypeMX    DNSRecordType = "MX"
	DNSRecordTypeTXT   DNSRecordType = "TXT"
	DNSRecordTypeNS    DNSRecordType = "NS"
	DNSRecordTypeCAA   DNSRecordType = "CAA"
)

var validTypes = map[DNSRecordType]bool{
	DNSRecordTypeA:     true,
	DNSRecordTypeAAAA:  true,
	DNSRecordTypeCNAME: true,
	DNSRecordTypeMX:    true,
	DNSRecordTypeTXT:   true,
	DNSRecordTypeNS:    true,
	DNSRecordTypeCAA:   true,
}

// Valid reports whether t is a supported type, ignoring case.
func (t DNSRecordType) Valid() bool {
	return validTypes[t.Normalize()]
}

func (t DNSRecordType) Normalize() DNSRecordType {
	return DNSRecordType(strings.ToUpper(string(t)))
}

// RecordValue is either a single string or a list of strings, and encodes
// back to the form it was decoded from.
type RecordValue struct {
	values []string
	list   bool
}

func ScalarValue(s string) RecordValue {
	return RecordValue{values: []string{s}}
}

func ListValue(values ...string) RecordValue {
	return RecordValue{values: values, list: true}
}

func (v RecordValue) Values() []string {
	return v.values
}

func (v RecordValue) IsList() bool {
	return v.list
}

func (v RecordValue) encoded() any {
	if v.list {
		if v.values == nil {
			return []string{}
		}
		return v.values
	}
	if len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

func (v RecordValue) MarshalYAML() (interface{}, error) {
	return v.encoded(), nil
}

func (v RecordValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.encoded())
}

func decodeRecordValue(v any, path string) (RecordValue, error) {
	if l, ok := v.([]any); ok {
		values := make([]string, 0, len(l))
		for i, item := range l {
			s, err := shape.Scalar(item, shape.Index(path, i))
			if err != nil {
				return RecordValue{}, err
			}
			values = append(values, s)
		}
		return ListValue(values...), nil
	}
	s, err := shape.Scalar(v, path)
	if err != nil {
		return RecordValue{}, err
	}
	return ScalarValue(s), nil
}

// DNSRecord is the typed view of a record mapping. Keys other than type and
// value stay in the mapping and are not read.
type DNSRecord struct {
	Type  DNSRecordType `yaml:"type" json:"type"`
	Value RecordValue   `yaml:"value" json:"value"`
}

// DecodeDNSRecord reads the type and value of a record mapping. The type is
// upper-cased. Only the shape is checked here; Validate checks the content.
func DecodeDNSRecord(v any, path string) (DNSRecord, error) {
	m, err := shape.Map(v, path)
	if err != nil {
		return DNSRecord{}, err
	}
	typ, err := shape.String(m, "type", path)
	if err != nil {
		return DNSRecord{}, err
	}
	raw, ok := m["value"]
	if !ok {
		return DNSRecord{}, domain.NewInputError(shape.Key(path, "value"), "missing key", domain.RequiredField("value"))
	}
	value, err := decodeRecordValue(raw, shape.Key(path, "value"))
	if err != nil {
		return DNSRecord{}, err
	}
	return DNSRecord{Type: DNSRecordType(typ).Normalize(), Value: value}, nil
}

func (r *DNSRecord) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w: dns record type %s", domain.ErrUnsupportedRecordType, r.Type)
	}
	if len(r.Value.Values()) == 0 {
		return domain.RequiredField("value")
	}
	for _, v := range r.Value.Values() {
		if v == "" {
			return fmt.Errorf("%w: empty value", domain.ErrInvalidValue)
		}
	}
	return nil
}
