package netcheck

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestCalculateNetworkRisk(t *testing.T) {
	cases := []struct {
		name        string
		dns         Outcome[string]
		age         Outcome[int]
		ssl         Outcome[bool]
		country     *string
		wantScore   int
		wantReasons []string
	}{
		{
			name:        "all clean",
			dns:         Probed("93.184.216.34"),
			age:         Probed(4000),
			ssl:         Probed(true),
			country:     strPtr("Canada"),
			wantScore:   0,
			wantReasons: []string{},
		},
		{
			name:      "extremely new domain only",
			dns:       Probed("1.2.3.4"),
			age:       Probed(3),
			ssl:       Probed(true),
			country:   strPtr("Germany"),
			wantScore: 6,
			wantReasons: []string{
				"Domain is extremely new (<7 days)",
			},
		},
		{
			name:      "dns fails everything unknown",
			dns:       Unknown[string](),
			age:       Unknown[int](),
			ssl:       Probed(false),
			country:   nil,
			wantScore: 10,
			wantReasons: []string{
				"Domain does not resolve",
				"Domain age could not be determined (WHOIS hidden)",
				"Invalid or missing SSL certificate",
				"Hosting country unknown",
			},
		},
		{
			name:      "worst case hits the cap",
			dns:       Unknown[string](),
			age:       Probed(1),
			ssl:       Probed(false),
			country:   strPtr("North Korea"),
			wantScore: MaxNetworkRiskScore,
			wantReasons: []string{
				"Domain does not resolve",
				"Domain is extremely new (<7 days)",
				"Invalid or missing SSL certificate",
				"Hosted in high-risk region",
			},
		},
		{
			name:      "newly registered",
			dns:       Probed("1.2.3.4"),
			age:       Probed(15),
			ssl:       Probed(true),
			country:   strPtr("Canada"),
			wantScore: 4,
			wantReasons: []string{
				"Domain is newly registered (<30 days)",
			},
		},
		{
			name:      "relatively new",
			dns:       Probed("1.2.3.4"),
			age:       Probed(60),
			ssl:       Probed(true),
			country:   strPtr("Canada"),
			wantScore: 2,
			wantReasons: []string{
				"Domain is relatively new (<90 days)",
			},
		},
		{
			name:      "ninety days is no longer new",
			dns:       Probed("1.2.3.4"),
			age:       Probed(90),
			ssl:       Probed(true),
			country:   strPtr("Canada"),
			wantScore: 0,
			wantReasons: []string{},
		},
		{
			name:      "abandoned tls probe counts as invalid",
			dns:       Probed("1.2.3.4"),
			age:       Probed(4000),
			ssl:       Unknown[bool](),
			country:   strPtr("Canada"),
			wantScore: 3,
			wantReasons: []string{
				"Invalid or missing SSL certificate",
			},
		},
		{
			name:      "netherlands is on the high-risk list",
			dns:       Probed("1.2.3.4"),
			age:       Probed(4000),
			ssl:       Probed(true),
			country:   strPtr("Netherlands"),
			wantScore: 2,
			wantReasons: []string{
				"Hosted in high-risk region",
			},
		},
		{
			name:      "literal Unknown country is high risk not absent",
			dns:       Probed("1.2.3.4"),
			age:       Probed(4000),
			ssl:       Probed(true),
			country:   strPtr("Unknown"),
			wantScore: 2,
			wantReasons: []string{
				"Hosted in high-risk region",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			score, reasons := CalculateNetworkRisk(c.dns, c.age, c.ssl, c.country)
			if score != c.wantScore {
				t.Fatalf("score got %d want %d", score, c.wantScore)
			}
			if !reflect.DeepEqual(reasons, c.wantReasons) {
				t.Fatalf("reasons got %v want %v", reasons, c.wantReasons)
			}
		})
	}
}

func TestCalculateNetworkRisk_ScoreBounds(t *testing.T) {
	countries := []*string{nil, strPtr("Canada"), strPtr("Russia"), strPtr("Unknown")}
	ages := []Outcome[int]{Unknown[int](), Probed(0), Probed(10), Probed(45), Probed(400)}
	dnss := []Outcome[string]{Unknown[string](), Probed("1.2.3.4")}
	ssls := []Outcome[bool]{Unknown[bool](), Probed(false), Probed(true)}

	for _, dns := range dnss {
		for _, age := range ages {
			for _, ssl := range ssls {
				for _, country := range countries {
					score, reasons := CalculateNetworkRisk(dns, age, ssl, country)
					if score < 0 || score > MaxNetworkRiskScore {
						t.Fatalf("score %d out of bounds", score)
					}
					if score == 0 && len(reasons) != 0 {
						t.Fatalf("zero score with reasons %v", reasons)
					}
					if score > 0 && len(reasons) == 0 {
						t.Fatalf("score %d with no reasons", score)
					}
				}
			}
		}
	}
}
