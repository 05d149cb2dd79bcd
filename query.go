package publicip

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/miekg/dns"
)

// exchange sends one echo query to one candidate server and decodes the
// answer. The dns.Client is created per call so concurrent resolutions
// never share connection state; the client owns and closes its socket.
func exchange(ctx context.Context, p Provider, server netip.AddrPort, timeout time.Duration) (netip.Addr, error) {
	client := &dns.Client{
		Net:     "udp",
		Timeout: timeout,
	}

	// The client timeout covers dial/read/write individually;
	// the context bounds the exchange as a whole.
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, _, err := client.ExchangeContext(ctx, p.message(), server.String())
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%s: exchange with %s failed: %w", p.Name, server, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return netip.Addr{}, fmt.Errorf("%s: %s answered %s: %w", p.Name, server, dns.RcodeToString[resp.Rcode], ErrNoRecord)
	}

	addr, err := p.decode(resp.Answer)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%s: %s: %w", p.Name, server, err)
	}
	return addr.Unmap(), nil
}
