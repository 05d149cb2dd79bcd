package publicip

import "net/netip"

// Version selects which address family a resolution should return.
type Version int

const (
	// Any accepts whichever family the first successful provider answers with.
	Any Version = iota
	IPv4
	IPv6
)

func (v Version) String() string {
	switch v {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "any"
	}
}

// matches reports whether addr belongs to the requested family.
// Addresses like ::ffff:203.0.113.7 count as IPv4.
func (v Version) matches(addr netip.Addr) bool {
	switch v {
	case IPv4:
		return addr.Is4() || addr.Is4In6()
	case IPv6:
		return addr.Is6() && !addr.Is4In6()
	default:
		return true
	}
}
