/*
Package publicip discovers the public (externally visible) IP address of
the machine it runs on by querying public DNS resolvers that echo the
requesting client's address back in a special-purpose record.

Usage will usually start with [Addr],
which asks the built-in providers in order and returns the first address
that parses.
Use [New] for a resolver with a custom provider list,
timeout, or logger.

DNS echo lookups are a lightweight alternative to HTTP "what is my IP"
services: OpenDNS answers myip.opendns.com with the client's address as
an A/AAAA record, and Google and Cloudflare answer similar queries with
the address as TXT text.
*/
package publicip
