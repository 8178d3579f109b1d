// Package beget converts DNS records between the generic private DNS zone
// description and the field layout of the Beget DNS API
// (dns/getData and dns/changeRecords).
package beget

import "strings"

const (
	// GroupDNS holds the nameservers of a subdomain.
	GroupDNS = "DNS"
	// GroupDNSIP holds glue addresses for GroupDNS; it is never sent back.
	GroupDNSIP = "DNS_IP"
	GroupCAA   = "CAA"
)

// Record is a single entry of a changeRecords group. CAA entries carry Flags
// and Tag and no Priority; every other entry carries Priority.
type Record struct {
	Value    string `yaml:"value" json:"value"`
	Priority *int   `yaml:"priority,omitempty" json:"priority,omitempty"`
	Flags    *int   `yaml:"flags,omitempty" json:"flags,omitempty"`
	Tag      string `yaml:"tag,omitempty" json:"tag,omitempty"`
}

// Records groups entries by Beget record type name, keeping input order
// inside each group.
type Records map[string][]Record

func prioritized(value string, priority int) Record {
	return Record{Value: value, Priority: &priority}
}

func caa(flags int, tag, value string) Record {
	return Record{Value: value, Flags: &flags, Tag: tag}
}

func stripDot(name string) string {
	return strings.TrimSuffix(name, ".")
}
