package netcheck

// DomainRiskReport is the aggregate scan result handed to the service
// boundary. A fresh report is built per request and never mutated once
// returned. HostingCountry and ISP are populated only when DNSResolves is
// true.
type DomainRiskReport struct {
	DNSResolves      bool     `json:"dns_resolves"`
	IPAddress        *string  `json:"ip_address"`
	DomainAgeDays    *int     `json:"domain_age_days"`
	SSLValid         bool     `json:"ssl_valid"`
	HostingCountry   *string  `json:"hosting_country"`
	ISP              *string  `json:"isp"`
	NetworkRiskScore int      `json:"network_risk_score"`
	Reasons          []string `json:"reasons"`
}
