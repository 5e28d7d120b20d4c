// Package features turns raw URL strings into the fixed lexical feature
// vector consumed by the phishing classifier. Extraction is pure and
// CPU-only; the keyword and TLD tables are read-only process constants.
package features

import (
	"errors"
	"math"
	"net"
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
)

// ErrInvalidURL is returned when the input cannot be coerced into a
// well-formed URL even after default-scheme normalization.
var ErrInvalidURL = errors.New("invalid URL format")

// Keywords phishing pages lean on, matched case-insensitively as substrings
// of the whole URL.
var suspiciousKeywords = []string{
	"login", "signin", "account", "update", "secure", "verify",
	"banking", "paypal", "ebay", "amazon", "microsoft", "apple",
	"confirm", "suspended", "restricted", "unusual", "click",
}

// Free TLDs with a long history of abuse.
var suspiciousTLDs = map[string]bool{
	"tk": true, "ml": true, "ga": true, "cf": true, "gq": true,
}

var ipPattern = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)

// URLFeatureSet holds the 22 lexical features of a single URL. Struct field
// order mirrors FeatureFieldOrder and defines the positional layout of the
// model input vector; never reorder one without the other.
type URLFeatureSet struct {
	URLLength             int     `json:"url_length"`
	DomainLength          int     `json:"domain_length"`
	HasHTTPS              int     `json:"has_https"`
	HasHTTP               int     `json:"has_http"`
	NumDots               int     `json:"num_dots"`
	NumHyphens            int     `json:"num_hyphens"`
	NumUnderscores        int     `json:"num_underscores"`
	NumSlashes            int     `json:"num_slashes"`
	NumQuestionMarks      int     `json:"num_question_marks"`
	NumEqualSigns         int     `json:"num_equal_signs"`
	NumAtSymbols          int     `json:"num_at_symbols"`
	NumAmpersands         int     `json:"num_ampersands"`
	HasIPAddress          int     `json:"has_ip_address"`
	NumSubdomainLevels    int     `json:"num_subdomain_levels"`
	PathLength            int     `json:"path_length"`
	QueryLength           int     `json:"query_length"`
	NumSuspiciousKeywords int     `json:"num_suspicious_keywords"`
	SpecialCharRatio      float64 `json:"special_char_ratio"`
	DigitRatio            float64 `json:"digit_ratio"`
	TLDLength             int     `json:"tld_length"`
	HasSuspiciousTLD      int     `json:"has_suspicious_tld"`
	DomainEntropy         float64 `json:"domain_entropy"`
}

var featureFieldOrder = []string{
	"url_length", "domain_length", "has_https", "has_http",
	"num_dots", "num_hyphens", "num_underscores", "num_slashes",
	"num_question_marks", "num_equal_signs", "num_at_symbols",
	"num_ampersands", "has_ip_address", "num_subdomain_levels",
	"path_length", "query_length", "num_suspicious_keywords",
	"special_char_ratio", "digit_ratio", "tld_length",
	"has_suspicious_tld", "domain_entropy",
}

// FeatureFieldOrder returns the feature names in vector position order.
// The order is a contract with the classifier; consumers must build their
// vectors from this accessor rather than assuming a layout. The returned
// slice is a copy.
func FeatureFieldOrder() []string {
	out := make([]string, len(featureFieldOrder))
	copy(out, featureFieldOrder)
	return out
}

// Vector lays the features out positionally, matching FeatureFieldOrder.
func (f URLFeatureSet) Vector() []float64 {
	return []float64{
		float64(f.URLLength), float64(f.DomainLength),
		float64(f.HasHTTPS), float64(f.HasHTTP),
		float64(f.NumDots), float64(f.NumHyphens),
		float64(f.NumUnderscores), float64(f.NumSlashes),
		float64(f.NumQuestionMarks), float64(f.NumEqualSigns),
		float64(f.NumAtSymbols), float64(f.NumAmpersands),
		float64(f.HasIPAddress), float64(f.NumSubdomainLevels),
		float64(f.PathLength), float64(f.QueryLength),
		float64(f.NumSuspiciousKeywords),
		f.SpecialCharRatio, f.DigitRatio,
		float64(f.TLDLength), float64(f.HasSuspiciousTLD),
		f.DomainEntropy,
	}
}

// ExtractURLFeatures computes the lexical feature set for rawURL. Inputs
// without a scheme get "http://" prepended before validation; anything that
// still fails to parse is rejected with ErrInvalidURL. All counts and
// ratios are taken over the normalized string.
func ExtractURLFeatures(rawURL string) (URLFeatureSet, error) {
	u, norm, err := normalizeURL(rawURL)
	if err != nil {
		return URLFeatureSet{}, err
	}

	host := strings.ToLower(u.Hostname())
	sub, dom, suffix := splitHost(host)
	lower := strings.ToLower(norm)

	f := URLFeatureSet{
		URLLength:        utf8.RuneCountInString(norm),
		DomainLength:     utf8.RuneCountInString(dom),
		NumDots:          strings.Count(norm, "."),
		NumHyphens:       strings.Count(norm, "-"),
		NumUnderscores:   strings.Count(norm, "_"),
		NumSlashes:       strings.Count(norm, "/"),
		NumQuestionMarks: strings.Count(norm, "?"),
		NumEqualSigns:    strings.Count(norm, "="),
		NumAtSymbols:     strings.Count(norm, "@"),
		NumAmpersands:    strings.Count(norm, "&"),
		PathLength:       utf8.RuneCountInString(u.EscapedPath()),
		QueryLength:      utf8.RuneCountInString(u.RawQuery),
		SpecialCharRatio: specialCharRatio(norm),
		DigitRatio:       digitRatio(norm),
		TLDLength:        utf8.RuneCountInString(suffix),
		DomainEntropy:    shannonEntropy(dom),
	}

	if u.Scheme == "https" {
		f.HasHTTPS = 1
	}
	if u.Scheme == "http" {
		f.HasHTTP = 1
	}
	if ipPattern.MatchString(norm) {
		f.HasIPAddress = 1
	}
	if sub != "" {
		f.NumSubdomainLevels = strings.Count(sub, ".") + 1
	}
	for _, kw := range suspiciousKeywords {
		if strings.Contains(lower, kw) {
			f.NumSuspiciousKeywords++
		}
	}
	if suspiciousTLDs[suffix] {
		f.HasSuspiciousTLD = 1
	}

	return f, nil
}

// normalizeURL validates rawURL, retrying with a default http scheme when
// the bare form does not parse as an absolute URL. It returns the parsed
// URL together with the normalized string the features are computed over.
func normalizeURL(raw string) (*url.URL, string, error) {
	if u, err := url.ParseRequestURI(raw); err == nil && validHost(u.Hostname()) {
		return u, raw, nil
	}

	norm := "http://" + raw
	u, err := url.ParseRequestURI(norm)
	if err != nil || !validHost(u.Hostname()) {
		return nil, "", ErrInvalidURL
	}
	return u, norm, nil
}

// validHost accepts dotted hostnames and IP literals. Single labels such as
// "localhost" are rejected; no public URL resolves to one.
func validHost(host string) bool {
	if host == "" {
		return false
	}
	return net.ParseIP(host) != nil || strings.Contains(host, ".")
}

// splitHost carves a host into subdomain, registrable domain label and
// public suffix. IP literals and unlisted single labels ("localhost") are
// treated as the domain itself with no suffix.
func splitHost(host string) (sub, domain, suffix string) {
	if host == "" {
		return "", "", ""
	}
	if net.ParseIP(host) != nil {
		return "", host, ""
	}

	suffix, icann := publicsuffix.PublicSuffix(host)
	if !icann && !strings.Contains(suffix, ".") {
		suffix = ""
	}
	if suffix != "" && suffix == host {
		return "", "", suffix
	}

	rest := host
	if suffix != "" {
		rest = strings.TrimSuffix(host, "."+suffix)
	}
	if i := strings.LastIndex(rest, "."); i >= 0 {
		return rest[:i], rest[i+1:], suffix
	}
	return "", rest, suffix
}

func specialCharRatio(s string) float64 {
	total := utf8.RuneCountInString(s)
	if total == 0 {
		return 0
	}
	special := 0
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			special++
		}
	}
	return float64(special) / float64(total)
}

func digitRatio(s string) float64 {
	total := utf8.RuneCountInString(s)
	if total == 0 {
		return 0
	}
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return float64(digits) / float64(total)
}

// shannonEntropy measures the randomness of the registered-domain label.
// Higher values point at algorithmically generated names.
func shannonEntropy(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}

	counts := make(map[rune]int, len(runes))
	for _, r := range runes {
		counts[r]++
	}

	entropy := 0.0
	n := float64(len(runes))
	for _, c := range counts {
		p := float64(c) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}
