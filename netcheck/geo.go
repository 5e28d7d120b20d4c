package netcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// GeoInfo is the slice of the ip-api response the risk model cares about.
// Pointer fields distinguish "service answered without the field" from a
// real value.
type GeoInfo struct {
	Country *string `json:"country"`
	ISP     *string `json:"isp"`
}

// LookupGeo resolves hosting country and ISP for an already-resolved
// address. Callers must gate this on a successful DNS probe; an empty
// address is a caller bug and is absorbed the same way as a lookup failure.
func (v *Validator) LookupGeo(ctx context.Context, ip string) Outcome[GeoInfo] {
	if ip == "" {
		log.Printf("[Geo] called without a resolved address, skipping")
		return Unknown[GeoInfo]()
	}

	url := fmt.Sprintf("%s/json/%s?fields=status,country,isp", v.cfg.GeoAPIURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Unknown[GeoInfo]()
	}

	resp, err := v.geoClient.Do(req)
	if err != nil {
		log.Printf("[Geo] lookup failed for %s: %v", ip, err)
		return Unknown[GeoInfo]()
	}
	defer resp.Body.Close()

	var info GeoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		log.Printf("[Geo] bad response for %s: %v", ip, err)
		return Unknown[GeoInfo]()
	}
	return Probed(info)
}
