package publicip_test

import (
	"context"
	"fmt"
	"log"
	"net/netip"
	"os"
	"time"

	"github.com/Travis-Britz/publicip"
	"github.com/miekg/dns"
	"github.com/rs/zerolog"
)

func ExampleAddr() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	addr, err := publicip.Addr(ctx)
	if err != nil {
		log.Fatalf("public IP lookup failed: %s", err)
	}
	fmt.Println(addr)
}

func ExampleNew() {
	resolver, err := publicip.New(
		publicip.UsingProviders(publicip.OpenDNS4, publicip.Cloudflare4),
		publicip.WithTimeout(2*time.Second),
		publicip.WithLogger(zerolog.New(os.Stderr)),
	)
	if err != nil {
		log.Fatalf("error creating resolver: %s", err)
	}

	addr, err := resolver.Resolve(context.Background(), publicip.IPv4)
	if err != nil {
		log.Fatalf("public IP lookup failed: %s", err)
	}
	fmt.Println(addr)
}

func ExampleUsingProviders() {
	// Point the resolver at a private echo service instead of the
	// built-in public ones.
	private := publicip.Provider{
		Name:       "internal",
		Servers:    []netip.AddrPort{netip.MustParseAddrPort("192.0.2.53:53")},
		Query:      "whoami.corp.example.",
		RecordType: dns.TypeTXT,
		Class:      dns.ClassINET,
	}
	resolver, err := publicip.New(publicip.UsingProviders(private))
	if err != nil {
		log.Fatalf("error creating resolver: %s", err)
	}

	addr, err := resolver.Resolve(context.Background(), publicip.Any)
	if err != nil {
		log.Fatalf("public IP lookup failed: %s", err)
	}
	fmt.Println(addr)
}
