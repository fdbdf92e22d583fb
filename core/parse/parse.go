package parse

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/bitrecs/recsgo/internal/utils"
	"github.com/bitrecs/recsgo/providers/observability"
)

// Record is a single recovered recommendation. SKU is the only mandatory
// field; Name, Price and Reason may be empty or defaulted depending on
// which cascade stage produced the record.
type Record struct {
	SKU    string `json:"sku"`
	Name   string `json:"name"`
	Price  string `json:"price"`
	Reason string `json:"reason"`
}

// MinViableInput is the minimum raw input length in characters. Anything
// shorter cannot encode a valid record and is rejected before any stage runs.
const MinViableInput = 10

// stage is one independent extraction strategy in the recovery cascade.
type stage struct {
	name string
	fn   func(string) []Record
}

// cascade orders strategies from cheapest and most precise to most expensive
// and least precise. The first stage yielding at least one record wins and
// the rest are never attempted, so well-formed output pays only the
// direct-parse cost.
var cascade = []stage{
	{name: "direct", fn: parseDirect},
	{name: "bracket", fn: parseBracketSlice},
	{name: "object_scan", fn: scanObjects},
	{name: "repair", fn: parseRepaired},
	{name: "line_salvage", fn: salvageLines},
}

// Records recovers an ordered sequence of recommendation records from raw
// model output. It never returns an error: malformed, truncated or
// prose-wrapped input is worked through the stage cascade, and an empty
// slice is the explicit "nothing recoverable" outcome.
//
// Diagnostic events are emitted to an observability span found in ctx, if
// any; their presence or absence never changes the returned value.
func Records(ctx context.Context, raw string) []Record {
	return runCascade(ctx, raw, cascade)
}

func runCascade(ctx context.Context, raw string, stages []stage) []Record {
	span := observability.SpanFromContext(ctx)

	if len(raw) < MinViableInput {
		if span != nil {
			span.AddEvent(observability.EventParseRejected,
				observability.Int(observability.AttrParseInputLength, len(raw)),
			)
		}
		return []Record{}
	}

	normalized := normalize(raw)

	for _, s := range stages {
		recs := s.fn(normalized)
		if len(recs) == 0 {
			continue
		}
		if span != nil {
			span.AddEvent(observability.EventParseRecovered,
				observability.String(observability.AttrParseStage, s.name),
				observability.Int(observability.AttrParseRecordCount, len(recs)),
			)
		}
		return recs
	}

	if span != nil {
		span.AddEvent(observability.EventParseExhausted,
			observability.Int(observability.AttrParseInputLength, len(raw)),
			observability.String(observability.AttrParseInputPreview, utils.TruncateString(normalized, 200)),
		)
	}
	return []Record{}
}

// normalize strips markdown code-fence markers and surrounding whitespace.
// Every cascade stage operates on the normalized text.
func normalize(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseDirect attempts to parse the whole input as a single JSON array.
func parseDirect(s string) []Record {
	return parseArray(s)
}

// parseBracketSlice slices from the first '[' to the last ']' and parses the
// span as a JSON array. This recovers arrays wrapped in commentary before
// and after the payload.
func parseBracketSlice(s string) []Record {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return nil
	}
	end := strings.LastIndexByte(s, ']')
	if end <= open {
		return nil
	}
	return parseArray(s[open : end+1])
}

// scanObjects walks the input left to right collecting standalone JSON
// objects that carry a sku field, in the order encountered. Matching is
// naive: each span runs from an opening brace to the first closing brace
// after it, with no depth balancing, so nested objects mis-split. That is an
// accepted precision trade-off for a late cascade stage.
func scanObjects(s string) []Record {
	var recs []Record
	for i := 0; i < len(s); {
		open := strings.IndexByte(s[i:], '{')
		if open < 0 {
			break
		}
		open += i
		closing := strings.IndexByte(s[open:], '}')
		if closing < 0 {
			break
		}
		closing += open

		var m map[string]any
		if err := json.Unmarshal([]byte(s[open:closing+1]), &m); err != nil {
			// Unparsable span: retry from inside it, the opening brace may
			// have been part of prose.
			i = open + 1
			continue
		}
		if rec, ok := toRecord(m); ok {
			recs = append(recs, rec)
		}
		i = closing + 1
	}
	return recs
}

// parseRepaired runs the input through best-effort JSON repair (closing
// dangling brackets and quotes, dropping trailing commas) and parses the
// result as an array. A failure of the repair step itself is a stage
// failure, never propagated.
func parseRepaired(s string) []Record {
	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return nil
	}
	return parseArray(repaired)
}

// parseArray parses s as a JSON array and keeps the elements that validate
// as records, preserving order.
func parseArray(s string) []Record {
	var elems []any
	if err := json.Unmarshal([]byte(s), &elems); err != nil {
		return nil
	}
	var recs []Record
	for _, elem := range elems {
		m, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		if rec, ok := toRecord(m); ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

// toRecord validates one decoded JSON object as a record. A non-empty sku is
// mandatory; the optional fields default to empty when absent. Numeric
// values are stringified so `"price": 99` survives the string-typed model.
func toRecord(m map[string]any) (Record, bool) {
	sku := stringField(m["sku"])
	if sku == "" {
		return Record{}, false
	}
	return Record{
		SKU:    sku,
		Name:   stringField(m["name"]),
		Price:  stringField(m["price"]),
		Reason: stringField(m["reason"]),
	}, true
}

func stringField(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	}
	return ""
}
