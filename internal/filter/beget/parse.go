package beget

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/lite-lake/infra-dnsfilters/internal/domain/entity"
)

// parseRR reads value as the RDATA of a single record in zone file
// presentation format. Relative names are completed with the root origin.
func parseRR(typ entity.DNSRecordType, value string) (dns.RR, error) {
	if strings.ContainsAny(value, "\n\r") {
		return nil, fmt.Errorf("%s value spans multiple lines", typ)
	}
	zp := dns.NewZoneParser(strings.NewReader(fmt.Sprintf("@ 0 IN %s %s\n", typ, value)), ".", "")
	rr, ok := zp.Next()
	if err := zp.Err(); err != nil {
		return nil, err
	}
	if !ok || rr == nil {
		return nil, fmt.Errorf("no %s record in %q", typ, value)
	}
	return rr, nil
}

// ParseMX splits "<preference> <exchange>".
func ParseMX(value string) (preference int, exchange string, err error) {
	rr, err := parseRR(entity.DNSRecordTypeMX, value)
	if err != nil {
		return 0, "", err
	}
	mx, ok := rr.(*dns.MX)
	if !ok {
		return 0, "", fmt.Errorf("unexpected record %s", dns.TypeToString[rr.Header().Rrtype])
	}
	return int(mx.Preference), mx.Mx, nil
}

// ParseCAA splits `<flags> <tag> "<value>"`.
func ParseCAA(value string) (flags int, tag, caaValue string, err error) {
	rr, err := parseRR(entity.DNSRecordTypeCAA, value)
	if err != nil {
		return 0, "", "", err
	}
	c, ok := rr.(*dns.CAA)
	if !ok {
		return 0, "", "", fmt.Errorf("unexpected record %s", dns.TypeToString[rr.Header().Rrtype])
	}
	return int(c.Flag), c.Tag, c.Value, nil
}
