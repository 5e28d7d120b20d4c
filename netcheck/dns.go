package netcheck

import (
	"context"
	"log"
	"net"
)

// LookupAddress resolves a hostname to a single address, preferring IPv4
// since that is what the geolocation service expects. A single attempt; any
// resolution failure is absorbed into Unknown.
func (v *Validator) LookupAddress(ctx context.Context, domain string) Outcome[string] {
	ctx, cancel := context.WithTimeout(ctx, v.cfg.DNSTimeout)
	defer cancel()

	ips, err := v.resolver.LookupIP(ctx, "ip", domain)
	if err != nil || len(ips) == 0 {
		log.Printf("[DNS] %s did not resolve: %v", domain, err)
		return Unknown[string]()
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return Probed(ip.String())
		}
	}
	return Probed(ips[0].String())
}

func newResolver(cfg Config) *net.Resolver {
	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{Timeout: cfg.DNSTimeout}
			if cfg.DNSServer != "" {
				address = cfg.DNSServer
			}
			return d.DialContext(ctx, network, address)
		},
	}
}
