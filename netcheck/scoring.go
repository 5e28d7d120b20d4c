package netcheck

// Countries whose hosting presence contributes risk on its own.
// TODO: review whether Netherlands belongs here; the literal "Unknown"
// entry doubles as a sentinel for geo services that return it as a country.
var highRiskCountries = []string{
	"Unknown",
	"Russia",
	"North Korea",
	"Iran",
	"Netherlands",
}

// MaxNetworkRiskScore caps the additive score; any excess is discarded.
const MaxNetworkRiskScore = 15

// CalculateNetworkRisk folds the four probe outcomes into a capped additive
// score plus the reason strings that fired. Signals are evaluated in a fixed
// order (DNS, age, TLS, country) and the reasons list reflects that order.
func CalculateNetworkRisk(dns Outcome[string], age Outcome[int], ssl Outcome[bool], country *string) (int, []string) {
	score := 0
	reasons := []string{}

	if !dns.Known {
		score += 4
		reasons = append(reasons, "Domain does not resolve")
	}

	switch {
	case !age.Known:
		score += 2
		reasons = append(reasons, "Domain age could not be determined (WHOIS hidden)")
	case age.Value < 7:
		score += 6
		reasons = append(reasons, "Domain is extremely new (<7 days)")
	case age.Value < 30:
		score += 4
		reasons = append(reasons, "Domain is newly registered (<30 days)")
	case age.Value < 90:
		score += 2
		reasons = append(reasons, "Domain is relatively new (<90 days)")
	}

	if !ssl.Known || !ssl.Value {
		score += 3
		reasons = append(reasons, "Invalid or missing SSL certificate")
	}

	switch {
	case country != nil && isHighRiskCountry(*country):
		score += 2
		reasons = append(reasons, "Hosted in high-risk region")
	case country == nil:
		score += 1
		reasons = append(reasons, "Hosting country unknown")
	}

	if score > MaxNetworkRiskScore {
		score = MaxNetworkRiskScore
	}
	return score, reasons
}

func isHighRiskCountry(country string) bool {
	for _, c := range highRiskCountries {
		if c == country {
			return true
		}
	}
	return false
}
