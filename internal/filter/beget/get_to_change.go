package beget

import (
	"slices"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
	"github.com/lite-lake/infra-dnsfilters/internal/domain/shape"
)

const GetToChangeFilterName = "beget_dns_get_to_change"

// valueFields are the getData field names that carry the record value, in
// lookup order.
var valueFields = []string{"cname", "address", "exchange", "txtdata", "value"}

// GetToChange turns a dns/getData "records" mapping into the mapping that
// dns/changeRecords accepts.
func GetToChange(response any) (Records, error) {
	groups, err := shape.Map(response, "")
	if err != nil {
		return nil, domain.WrapOp(GetToChangeFilterName, err)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result := Records{}
	for _, key := range keys {
		records, err := convertGroup(key, groups[key])
		if err != nil {
			return nil, domain.WrapOp(GetToChangeFilterName, err)
		}
		switch {
		case key == GroupDNSIP:
		case key == GroupDNS && len(records) == 0:
		default:
			result[key] = records
		}
	}
	return result, nil
}

func convertGroup(group string, v any) ([]Record, error) {
	items, err := shape.List(v, group)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(items))
	for i, item := range items {
		path := shape.Index(group, i)
		entry, err := shape.Map(item, path)
		if err != nil {
			return nil, err
		}
		if group == GroupDNSIP {
			continue
		}
		r, err := convertEntry(group, entry, path)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func convertEntry(group string, entry map[string]any, path string) (Record, error) {
	field := ""
	for _, f := range valueFields {
		if _, ok := entry[f]; ok {
			field = f
			break
		}
	}
	if field == "" {
		return Record{}, domain.NewInputError(path, "no value field", domain.RequiredField("value"))
	}
	value, err := shape.Scalar(entry[field], shape.Key(path, field))
	if err != nil {
		return Record{}, err
	}
	if field == "exchange" {
		value = stripDot(value)
	}

	if group == GroupCAA {
		flags, err := shape.OptionalInt(entry, "flags", path, 0)
		if err != nil {
			return Record{}, err
		}
		tag := ""
		if raw, ok := entry["tag"]; ok && raw != nil {
			if tag, err = shape.Scalar(raw, shape.Key(path, "tag")); err != nil {
				return Record{}, err
			}
		}
		return caa(flags, tag, value), nil
	}

	priorityField := "priority"
	if _, ok := entry["preference"]; ok {
		priorityField = "preference"
	}
	priority, err := shape.OptionalInt(entry, priorityField, path, 0)
	if err != nil {
		return Record{}, err
	}
	return prioritized(value, priority), nil
}
