package netcheck

import (
	"context"
	"log"
	"strings"
	"time"

	parser "github.com/likexian/whois-parser"
)

// DomainAgeDays queries the registrar WHOIS record and derives the
// registration age in whole days. Redacted records, missing creation dates
// and parse failures all come back Unknown.
func (v *Validator) DomainAgeDays(ctx context.Context, domain string) Outcome[int] {
	ch := make(chan Outcome[int], 1)
	go func() { ch <- v.whoisAge(domain) }()

	select {
	case out := <-ch:
		return out
	case <-ctx.Done():
		log.Printf("[WHOIS] lookup for %s abandoned: %v", domain, ctx.Err())
		return Unknown[int]()
	}
}

func (v *Validator) whoisAge(domain string) Outcome[int] {
	raw, err := v.whoisClient.Whois(domain)
	if err != nil {
		log.Printf("[WHOIS] lookup failed for %s: %v", domain, err)
		return Unknown[int]()
	}

	p, err := parser.Parse(raw)
	if err != nil || p.Domain == nil {
		// Subdomains rarely carry their own record; retry the parent
		// (e.g. mail.example.com -> example.com).
		parts := strings.Split(domain, ".")
		if len(parts) > 2 {
			return v.whoisAge(strings.Join(parts[1:], "."))
		}
		return Unknown[int]()
	}

	created, ok := creationTime(p.Domain)
	if !ok {
		return Unknown[int]()
	}
	return Probed(ageDays(created, time.Now()))
}

// creationTime pulls the registration date out of a parsed record. The
// parser surfaces a typed time when it recognises the layout; otherwise only
// the leading YYYY-MM-DD portion of the raw string is matched, since
// registrars append wildly different time and zone suffixes.
func creationTime(d *parser.Domain) (time.Time, bool) {
	if d.CreatedDateInTime != nil {
		return *d.CreatedDateInTime, true
	}

	s := strings.TrimSpace(d.CreatedDate)
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func ageDays(created, now time.Time) int {
	return int(now.Sub(created).Hours() / 24)
}
