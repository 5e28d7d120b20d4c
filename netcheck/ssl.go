package netcheck

import (
	"context"
	"crypto/tls"
	"log"
	"net"
)

// ProbeTLS attempts a TLS handshake on port 443 with default certificate
// verification (trust-store chain plus hostname check). It reports validity
// only: refused connections, timeouts, bad chains and hostname mismatches
// all come back false.
func (v *Validator) ProbeTLS(ctx context.Context, domain string) Outcome[bool] {
	ctx, cancel := context.WithTimeout(ctx, v.cfg.TLSTimeout)
	defer cancel()

	d := tls.Dialer{
		NetDialer: &net.Dialer{Timeout: v.cfg.TLSTimeout},
		Config:    &tls.Config{ServerName: domain},
	}

	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(domain, "443"))
	if err != nil {
		log.Printf("[TLS] handshake with %s failed: %v", domain, err)
		return Probed(false)
	}
	conn.Close()
	return Probed(true)
}
