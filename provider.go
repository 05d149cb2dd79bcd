package publicip

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/miekg/dns"
)

// Provider describes one public DNS service that answers a fixed query
// with a record containing the address the query came from.
//
// The provider list used by the default resolver is compiled in;
// construct your own Provider values and pass them to UsingProviders to
// point the resolver somewhere else (a private echo service, or a test
// server).
type Provider struct {
	// Name identifies the provider in logs and error messages.
	Name string

	// Servers are the candidate resolver addresses, tried in order.
	Servers []netip.AddrPort

	// Query is the name to ask for, e.g. "myip.opendns.com.".
	Query string

	// RecordType is dns.TypeA, dns.TypeAAAA, or dns.TypeTXT.
	// It doubles as the decode rule:
	// A and AAAA answers are taken directly,
	// TXT answers are parsed as address text.
	RecordType uint16

	// Class is dns.ClassINET for nearly everything.
	// Cloudflare answers its whoami query in dns.ClassCHAOS.
	Class uint16
}

// The built-in providers, listed in the order the default resolver
// tries them. OpenDNS and Google publish four IPv4 resolver addresses
// each; later addresses are only contacted if earlier ones fail.
var (
	OpenDNS4 = Provider{
		Name: "opendns",
		Servers: []netip.AddrPort{
			netip.MustParseAddrPort("208.67.222.222:53"),
			netip.MustParseAddrPort("208.67.220.220:53"),
			netip.MustParseAddrPort("208.67.222.220:53"),
			netip.MustParseAddrPort("208.67.220.222:53"),
		},
		Query:      "myip.opendns.com.",
		RecordType: dns.TypeA,
		Class:      dns.ClassINET,
	}

	OpenDNS6 = Provider{
		Name: "opendns",
		Servers: []netip.AddrPort{
			netip.MustParseAddrPort("[2620:0:ccc::2]:53"),
			netip.MustParseAddrPort("[2620:0:ccd::2]:53"),
		},
		Query:      "myip.opendns.com.",
		RecordType: dns.TypeAAAA,
		Class:      dns.ClassINET,
	}

	Google4 = Provider{
		Name: "google",
		Servers: []netip.AddrPort{
			netip.MustParseAddrPort("216.239.32.10:53"),
			netip.MustParseAddrPort("216.239.34.10:53"),
			netip.MustParseAddrPort("216.239.36.10:53"),
			netip.MustParseAddrPort("216.239.38.10:53"),
		},
		Query:      "o-o.myaddr.l.google.com.",
		RecordType: dns.TypeTXT,
		Class:      dns.ClassINET,
	}

	Google6 = Provider{
		Name: "google",
		Servers: []netip.AddrPort{
			netip.MustParseAddrPort("[2001:4860:4802:32::a]:53"),
			netip.MustParseAddrPort("[2001:4860:4802:34::a]:53"),
			netip.MustParseAddrPort("[2001:4860:4802:36::a]:53"),
			netip.MustParseAddrPort("[2001:4860:4802:38::a]:53"),
		},
		Query:      "o-o.myaddr.l.google.com.",
		RecordType: dns.TypeTXT,
		Class:      dns.ClassINET,
	}

	Cloudflare4 = Provider{
		Name: "cloudflare",
		Servers: []netip.AddrPort{
			netip.MustParseAddrPort("1.1.1.1:53"),
			netip.MustParseAddrPort("1.0.0.1:53"),
		},
		Query:      "whoami.cloudflare.",
		RecordType: dns.TypeTXT,
		Class:      dns.ClassCHAOS,
	}

	Cloudflare6 = Provider{
		Name: "cloudflare",
		Servers: []netip.AddrPort{
			netip.MustParseAddrPort("[2606:4700:4700::1111]:53"),
			netip.MustParseAddrPort("[2606:4700:4700::1001]:53"),
		},
		Query:      "whoami.cloudflare.",
		RecordType: dns.TypeTXT,
		Class:      dns.ClassCHAOS,
	}
)

// DefaultProviders is the provider order used when none are configured.
var DefaultProviders = []Provider{OpenDNS4, OpenDNS6, Google4, Google6, Cloudflare4, Cloudflare6}

// message builds the echo query for this provider.
func (p Provider) message() *dns.Msg {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(p.Query), p.RecordType)
	m.Question[0].Qclass = p.Class
	m.SetEdns0(dns.DefaultMsgSize, false)
	return m
}

// decode extracts an address from the answer section according to the
// provider's record type.
func (p Provider) decode(answers []dns.RR) (netip.Addr, error) {
	for _, rr := range answers {
		switch rec := rr.(type) {
		case *dns.A:
			if p.RecordType != dns.TypeA {
				continue
			}
			if addr, ok := netip.AddrFromSlice(rec.A.To4()); ok {
				return addr, nil
			}
		case *dns.AAAA:
			if p.RecordType != dns.TypeAAAA {
				continue
			}
			if addr, ok := netip.AddrFromSlice(rec.AAAA.To16()); ok {
				return addr, nil
			}
		case *dns.TXT:
			if p.RecordType != dns.TypeTXT {
				continue
			}
			if len(rec.Txt) == 0 {
				continue
			}
			addr, err := netip.ParseAddr(strings.TrimSpace(rec.Txt[0]))
			if err != nil {
				return netip.Addr{}, fmt.Errorf("%w: %q does not parse as an IP address", ErrNoRecord, rec.Txt[0])
			}
			return addr, nil
		}
	}
	return netip.Addr{}, ErrNoRecord
}
