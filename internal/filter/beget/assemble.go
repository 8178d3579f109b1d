package beget

import (
	"errors"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
	"github.com/lite-lake/infra-dnsfilters/internal/domain/entity"
	"github.com/lite-lake/infra-dnsfilters/internal/domain/shape"
)

const AssembleFilterName = "private_dns_to_beget"

// FromPrivateDNS builds the changeRecords payload for the subdomain called
// name out of a domain's subdomains list. When the list names the same
// subdomain twice the first one is used.
func FromPrivateDNS(subdomains any, name string) (Records, error) {
	subs, err := entity.DecodeSubdomains(subdomains, "")
	if err != nil {
		return nil, domain.WrapOp(AssembleFilterName, err)
	}
	for i := range subs {
		if subs[i].Name == name {
			records, err := assemble(subs[i], shape.Index("", i))
			if err != nil {
				return nil, domain.WrapOp(AssembleFilterName, err)
			}
			return records, nil
		}
	}
	return nil, domain.WrapOp(AssembleFilterName,
		domain.NewInputError("", "no subdomain "+name, domain.ErrSubdomainNotFound))
}

func assemble(sub entity.Subdomain, path string) (Records, error) {
	records := Records{}
	recordsPath := shape.Key(path, "records")
	for i, raw := range sub.Records {
		path := shape.Index(recordsPath, i)
		r, err := entity.DecodeDNSRecord(raw, path)
		if err != nil {
			return nil, err
		}
		if err := appendRecord(records, r, path); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func appendRecord(records Records, r entity.DNSRecord, path string) error {
	typ := r.Type.Normalize()
	group := string(typ)
	valuePath := shape.Key(path, "value")

	for _, v := range r.Value.Values() {
		switch typ {
		case entity.DNSRecordTypeA, entity.DNSRecordTypeAAAA, entity.DNSRecordTypeTXT:
			records[group] = append(records[group], prioritized(v, 0))
		case entity.DNSRecordTypeCNAME:
			records[group] = append(records[group], prioritized(stripDot(v), 0))
		case entity.DNSRecordTypeNS:
			records[GroupDNS] = append(records[GroupDNS], prioritized(stripDot(v), 0))
		case entity.DNSRecordTypeMX:
			preference, exchange, err := ParseMX(v)
			if err != nil {
				return domain.NewInputError(valuePath, "malformed MX value "+v, errors.Join(domain.ErrInvalidValue, err))
			}
			records[group] = append(records[group], prioritized(stripDot(exchange), preference))
		case entity.DNSRecordTypeCAA:
			flags, tag, value, err := ParseCAA(v)
			if err != nil {
				return domain.NewInputError(valuePath, "malformed CAA value "+v, errors.Join(domain.ErrInvalidValue, err))
			}
			records[group] = append(records[group], caa(flags, tag, value))
		default:
			return domain.NewInputError(shape.Key(path, "type"), "record type "+string(r.Type), domain.ErrUnsupportedRecordType)
		}
	}
	return nil
}

// CheckZone reports every record value of z that FromPrivateDNS cannot
// convert. Records that fail entity validation are left to Zone.Validate.
func CheckZone(z entity.Zone) error {
	var errs []error
	for _, d := range z {
		for i, sub := range d.Subdomains {
			recordsPath := shape.Key(shape.Index("subdomains", i), "records")
			for j, raw := range sub.Records {
				path := shape.Index(recordsPath, j)
				r, err := entity.DecodeDNSRecord(raw, path)
				if err != nil || r.Validate() != nil {
					continue
				}
				if err := appendRecord(Records{}, r, path); err != nil {
					errs = append(errs, domain.WrapEntity("domain", d.Name, err))
				}
			}
		}
	}
	return errors.Join(errs...)
}
