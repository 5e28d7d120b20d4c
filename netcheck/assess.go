package netcheck

import (
	"context"
	"log"
	"net"
	"net/http"
	"strings"

	whois "github.com/likexian/whois"
	"golang.org/x/sync/errgroup"
)

// Validator runs the network probes behind a domain scan. Construct one
// with NewValidator and share it freely; it is safe for concurrent use.
type Validator struct {
	cfg         Config
	resolver    *net.Resolver
	geoClient   *http.Client
	whoisClient *whois.Client

	// Probe seams, overridable in tests.
	dnsFn   func(ctx context.Context, domain string) Outcome[string]
	whoisFn func(ctx context.Context, domain string) Outcome[int]
	tlsFn   func(ctx context.Context, domain string) Outcome[bool]
	geoFn   func(ctx context.Context, ip string) Outcome[GeoInfo]
}

func NewValidator(cfg Config) *Validator {
	v := &Validator{
		cfg:         cfg,
		resolver:    newResolver(cfg),
		geoClient:   &http.Client{Timeout: cfg.GeoTimeout},
		whoisClient: whois.NewClient(),
	}
	v.whoisClient.SetTimeout(cfg.WhoisTimeout)
	v.dnsFn = v.LookupAddress
	v.whoisFn = v.DomainAgeDays
	v.tlsFn = v.ProbeTLS
	v.geoFn = v.LookupGeo
	return v
}

// AssessDomain runs every probe and aggregates the outcomes into a risk
// report. DNS, WHOIS and TLS fan out concurrently; geolocation runs only
// once DNS has produced an address. Probe failures degrade to Unknown, so
// this never returns an error.
func (v *Validator) AssessDomain(ctx context.Context, domain string) DomainRiskReport {
	domain = NormalizeDomain(domain)

	var (
		dns Outcome[string]
		age Outcome[int]
		ssl Outcome[bool]
		geo Outcome[GeoInfo]
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dns = v.dnsFn(ctx, domain)
		if dns.Known {
			geo = v.geoFn(ctx, dns.Value)
		}
		return nil
	})
	g.Go(func() error {
		age = v.whoisFn(ctx, domain)
		return nil
	})
	g.Go(func() error {
		ssl = v.tlsFn(ctx, domain)
		return nil
	})
	_ = g.Wait()

	var country, isp *string
	if geo.Known {
		country = geo.Value.Country
		isp = geo.Value.ISP
	}

	score, reasons := CalculateNetworkRisk(dns, age, ssl, country)

	report := DomainRiskReport{
		DNSResolves:      dns.Known,
		SSLValid:         ssl.Known && ssl.Value,
		HostingCountry:   country,
		ISP:              isp,
		NetworkRiskScore: score,
		Reasons:          reasons,
	}
	if dns.Known {
		addr := dns.Value
		report.IPAddress = &addr
	}
	if age.Known {
		d := age.Value
		report.DomainAgeDays = &d
	}

	log.Printf("[Scan] %s scored %d (%d reasons)", domain, score, len(reasons))
	return report
}

// NormalizeDomain strips the pieces callers tend to leave on a hostname:
// scheme, path and surrounding whitespace.
func NormalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	domain = strings.ToLower(domain)
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.Split(domain, "/")[0]
	return domain
}
