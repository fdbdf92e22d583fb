package parse

import (
	"regexp"
	"strings"
)

// Defaults substituted by line-level salvage when a qualifying line carries
// no price or reason of its own.
const (
	defaultPrice  = "0"
	defaultReason = "Recommended product"
)

// Field patterns match `"field": "value"` with the value being any run of
// non-quote characters. Values spanning lines or containing escaped quotes
// are out of contract for this last-resort stage: matching stops at the
// first quote and never crosses a line boundary.
var (
	skuFieldPattern    = regexp.MustCompile(`(?i)"sku"\s*:\s*"([^"]*)"`)
	nameFieldPattern   = regexp.MustCompile(`(?i)"name"\s*:\s*"([^"]*)"`)
	priceFieldPattern  = regexp.MustCompile(`(?i)"price"\s*:\s*"([^"]*)"`)
	reasonFieldPattern = regexp.MustCompile(`(?i)"reason"\s*:\s*"([^"]*)"`)
)

// salvageLines is the last resort of the cascade: it scavenges records from
// individual lines of otherwise unparsable output. A line qualifies when it
// mentions sku alongside name or price (case-insensitive); a record is
// emitted when at minimum sku and name could be extracted, with the price
// and reason defaulted when absent.
func salvageLines(s string) []Record {
	var recs []Record
	for _, line := range strings.Split(s, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "sku") {
			continue
		}
		if !strings.Contains(lower, "name") && !strings.Contains(lower, "price") {
			continue
		}

		skuMatch := skuFieldPattern.FindStringSubmatch(line)
		nameMatch := nameFieldPattern.FindStringSubmatch(line)
		if skuMatch == nil || nameMatch == nil || skuMatch[1] == "" {
			continue
		}

		rec := Record{
			SKU:    skuMatch[1],
			Name:   nameMatch[1],
			Price:  defaultPrice,
			Reason: defaultReason,
		}
		if m := priceFieldPattern.FindStringSubmatch(line); m != nil {
			rec.Price = m[1]
		}
		if m := reasonFieldPattern.FindStringSubmatch(line); m != nil {
			rec.Reason = m[1]
		}
		recs = append(recs, rec)
	}
	return recs
}
