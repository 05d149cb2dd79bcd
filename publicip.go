package publicip

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// defaultTimeout bounds each individual provider query.
// No SLA drives this number; it mirrors what stub resolvers commonly use.
const defaultTimeout = 5 * time.Second

// DefaultResolver is the resolver used by Addr, AddrV4, and AddrV6.
var DefaultResolver = &Resolver{
	providers: DefaultProviders,
	timeout:   defaultTimeout,
	logger:    zerolog.Nop(),
}

// Addr returns the public IP address of the caller,
// whichever family the first successful provider reports.
func Addr(ctx context.Context) (netip.Addr, error) {
	return DefaultResolver.Resolve(ctx, Any)
}

// AddrV4 returns the caller's public IPv4 address.
func AddrV4(ctx context.Context) (netip.Addr, error) {
	return DefaultResolver.Resolve(ctx, IPv4)
}

// AddrV6 returns the caller's public IPv6 address.
func AddrV6(ctx context.Context) (netip.Addr, error) {
	return DefaultResolver.Resolve(ctx, IPv6)
}

// Resolver performs public IP lookups against an ordered provider list.
// It holds no connections and no mutable state between calls,
// so a single Resolver is safe for concurrent use.
type Resolver struct {
	providers []Provider
	timeout   time.Duration
	logger    zerolog.Logger
}

// New returns a Resolver configured by the given options.
// With no options it behaves exactly like DefaultResolver.
func New(options ...resolverOption) (*Resolver, error) {
	r := &Resolver{
		providers: DefaultProviders,
		timeout:   defaultTimeout,
		logger:    zerolog.Nop(),
	}
	for i, opt := range options {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("publicip.New: option %d returned an error: %w", i, err)
		}
	}
	return r, nil
}

type resolverOption func(*Resolver) error

// UsingProviders replaces the built-in provider list.
// Providers are tried in the order given.
func UsingProviders(providers ...Provider) resolverOption {
	return func(r *Resolver) error {
		if len(providers) == 0 {
			return errors.New("provider list cannot be empty")
		}
		for _, p := range providers {
			if len(p.Servers) == 0 {
				return fmt.Errorf("provider %q has no server addresses", p.Name)
			}
		}
		r.providers = providers
		return nil
	}
}

// WithTimeout sets the bound for each individual provider query.
// The worst-case duration of a Resolve call is roughly the timeout
// multiplied by the number of configured server addresses.
func WithTimeout(d time.Duration) resolverOption {
	return func(r *Resolver) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		r.timeout = d
		return nil
	}
}

// WithLogger directs per-provider failure logs to the given logger.
// The default discards them; only total exhaustion is reported to the
// caller as an error.
func WithLogger(logger zerolog.Logger) resolverOption {
	return func(r *Resolver) error {
		r.logger = logger
		return nil
	}
}

// Resolve queries the configured providers in order and returns the
// first echoed address matching the requested family.
//
// Candidates are tried strictly sequentially.
// A timeout, transport error, or undecodable response fails only that
// candidate; the next one is tried. When every candidate has failed the
// returned error is an *ExhaustedError wrapping the individual causes.
func (r *Resolver) Resolve(ctx context.Context, v Version) (netip.Addr, error) {
	providers := r.providers
	if len(providers) == 0 {
		providers = DefaultProviders
	}
	timeout := r.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var failures *multierror.Error
	for _, p := range providers {
		for _, server := range p.Servers {
			// Family-pinned lookups skip servers we would have to reach
			// over the other family's transport.
			if !v.matches(server.Addr()) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return netip.Addr{}, err
			}

			addr, err := exchange(ctx, p, server, timeout)
			if err != nil {
				r.logger.Debug().Err(err).Str("provider", p.Name).Stringer("server", server).Msg("public IP query failed")
				failures = multierror.Append(failures, err)
				continue
			}
			if !v.matches(addr) {
				err = fmt.Errorf("%s: asked for %s, got %s: %w", p.Name, v, addr, ErrVersionMismatch)
				r.logger.Debug().Err(err).Str("provider", p.Name).Msg("discarding answer")
				failures = multierror.Append(failures, err)
				continue
			}
			r.logger.Debug().Str("provider", p.Name).Stringer("addr", addr).Msg("public IP resolved")
			return addr, nil
		}
	}

	return netip.Addr{}, &ExhaustedError{cause: failures.ErrorOrNil()}
}
