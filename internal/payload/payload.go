// Package payload converts untyped request documents into typed charts and
// resolved options. Validation is fail-fast: the first required-field
// failure aborts the whole request with one field-path error.
package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/oneinabillion/vedic-match/internal/kundali"
	"github.com/oneinabillion/vedic-match/internal/manglik"
	"github.com/oneinabillion/vedic-match/internal/matching"
	"go.uber.org/zap"
)

// Error is the single validation error kind. Field is a path into the
// request document, like "person_b.nakshatra" or "candidates[2].moon_sign".
type Error struct {
	Field string
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// PersonDoc is the wire form of one person's chart input. Optional fields
// are pointers so an absent value is distinguishable from a zero.
type PersonDoc struct {
	ID        string  `json:"id"`
	MoonSign  string  `json:"moon_sign"`
	Nakshatra string  `json:"nakshatra"`
	Pada      *int    `json:"pada"`
	MarsHouse *int    `json:"mars_house"`
	MarsSign  *string `json:"mars_sign"`
	Spice     *int    `json:"spice"`
	Varna     *string `json:"varna"`
	Vashya    *string `json:"vashya"`
	Yoni      *string `json:"yoni"`
	Gana      *string `json:"gana"`
	Nadi      *string `json:"nadi"`
}

// OptionsDoc is the wire form of the tunable options. Every field is
// optional; absent values keep their configured defaults and invalid
// values are coerced, never rejected.
type OptionsDoc struct {
	MinimumViableScore     *int     `json:"minimumViableScore"`
	AllowNadiCancellation  *bool    `json:"allowNadiCancellation"`
	ApplySimpleManglikGate *bool    `json:"applySimpleManglikGate"`
	ManglikPolicy          *string  `json:"manglikPolicy"`
	WeightVedic            *float64 `json:"weightVedic"`
	WeightSpice            *float64 `json:"weightSpice"`
	IncludeIneligible      *bool    `json:"includeIneligible"`
	Concurrency            *int     `json:"concurrency"`
}

// MatchRequest is a validated two-person request.
type MatchRequest struct {
	PersonA kundali.Chart
	PersonB kundali.Chart
	Options matching.Options
}

// RankRequest is a validated one-to-many request.
type RankRequest struct {
	Source     kundali.Chart
	Candidates []kundali.Chart
	Options    matching.Options
}

// Parser validates request documents.
type Parser struct {
	logger *zap.Logger
}

// NewParser returns a parser logging through the given logger. A nil
// logger keeps the parser silent.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// ParseMatchRequest validates a match or score document. The base options
// come from configuration; request options are applied on top.
func (p *Parser) ParseMatchRequest(data []byte, base matching.Options) (*MatchRequest, error) {
	body, err := parseBody(data)
	if err != nil {
		return nil, err
	}

	personA, err := p.parsePerson("person_a", body["person_a"])
	if err != nil {
		return nil, err
	}
	personB, err := p.parsePerson("person_b", body["person_b"])
	if err != nil {
		return nil, err
	}

	return &MatchRequest{
		PersonA: personA,
		PersonB: personB,
		Options: ResolveOptions(base, p.parseOptions(body["options"])),
	}, nil
}

// ParseRankRequest validates a rank document. The base options come from
// configuration; request options are applied on top.
func (p *Parser) ParseRankRequest(data []byte, base matching.Options) (*RankRequest, error) {
	body, err := parseBody(data)
	if err != nil {
		return nil, err
	}

	source, err := p.parsePerson("source", body["source"])
	if err != nil {
		return nil, err
	}

	rawCandidates, ok := body["candidates"]
	if !ok || rawCandidates == nil {
		return nil, &Error{Field: "candidates", Msg: "is required"}
	}
	items, ok := rawCandidates.([]any)
	if !ok {
		return nil, &Error{Field: "candidates", Msg: "must be an array"}
	}

	candidates := make([]kundali.Chart, 0, len(items))
	for i, item := range items {
		candidate, err := p.parsePerson(fmt.Sprintf("candidates[%d]", i), item)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}

	return &RankRequest{
		Source:     source,
		Candidates: candidates,
		Options:    ResolveOptions(base, p.parseOptions(body["options"])),
	}, nil
}

func parseBody(data []byte) (map[string]any, error) {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, &Error{Field: "request", Msg: fmt.Sprintf("invalid json: %v", err)}
	}
	return body, nil
}

func (p *Parser) parsePerson(field string, input any) (kundali.Chart, error) {
	var chart kundali.Chart

	if input == nil {
		return chart, &Error{Field: field, Msg: "is required"}
	}

	var doc PersonDoc
	if err := decode(input, &doc, false); err != nil {
		return chart, &Error{Field: field, Msg: err.Error()}
	}

	return p.validatePerson(field, doc)
}

// parseOptions never fails: an undecodable options block is ignored so
// that tuning values can not reject a request.
func (p *Parser) parseOptions(input any) *OptionsDoc {
	if input == nil {
		return nil
	}

	var doc OptionsDoc
	if err := decode(input, &doc, true); err != nil {
		p.logger.Debug("ignoring undecodable options block", zap.Error(err))
		return nil
	}
	return &doc
}

func decode(input, result any, weak bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: weak,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func (p *Parser) validatePerson(field string, doc PersonDoc) (kundali.Chart, error) {
	var chart kundali.Chart

	id := strings.TrimSpace(doc.ID)
	if id == "" {
		return chart, &Error{Field: field + ".id", Msg: "is required"}
	}
	chart.ID = id

	if strings.TrimSpace(doc.MoonSign) == "" {
		return chart, &Error{Field: field + ".moon_sign", Msg: "is required"}
	}
	sign, ok := kundali.ParseSign(doc.MoonSign)
	if !ok {
		return chart, &Error{Field: field + ".moon_sign", Msg: fmt.Sprintf("unrecognized sign %q", doc.MoonSign)}
	}
	chart.MoonSign = sign

	if strings.TrimSpace(doc.Nakshatra) == "" {
		return chart, &Error{Field: field + ".nakshatra", Msg: "is required"}
	}
	nakshatra, ok := kundali.ParseNakshatra(doc.Nakshatra)
	if !ok {
		return chart, &Error{Field: field + ".nakshatra", Msg: fmt.Sprintf("unrecognized nakshatra %q", doc.Nakshatra)}
	}
	chart.Nakshatra = nakshatra

	if doc.Pada != nil {
		if *doc.Pada < 1 || *doc.Pada > 4 {
			return chart, &Error{Field: field + ".pada", Msg: "must be between 1 and 4"}
		}
		chart.Pada = *doc.Pada
	}

	if doc.MarsHouse != nil {
		if *doc.MarsHouse < 1 || *doc.MarsHouse > 12 {
			return chart, &Error{Field: field + ".mars_house", Msg: "must be between 1 and 12"}
		}
		chart.MarsHouse = *doc.MarsHouse
	}

	if doc.MarsSign != nil && strings.TrimSpace(*doc.MarsSign) != "" {
		marsSign, ok := kundali.ParseSign(*doc.MarsSign)
		if !ok {
			return chart, &Error{Field: field + ".mars_sign", Msg: fmt.Sprintf("unrecognized sign %q", *doc.MarsSign)}
		}
		chart.MarsSign = marsSign
	}

	if doc.Spice != nil {
		chart.Spice = matching.ClampSpice(*doc.Spice)
	}

	p.applyOverrides(field, doc, &chart)

	return chart, nil
}

// applyOverrides copies the optional category overrides onto the chart.
// Unrecognized values are ignored so the derived categories stay in use.
func (p *Parser) applyOverrides(field string, doc PersonDoc, chart *kundali.Chart) {
	if v := stringValue(doc.Varna); v != "" {
		if varna, ok := kundali.ParseVarna(v); ok {
			chart.Varna = varna
		} else {
			p.ignoreOverride(field+".varna", v)
		}
	}
	if v := stringValue(doc.Vashya); v != "" {
		if vashya, ok := kundali.ParseVashyaGroup(v); ok {
			chart.Vashya = vashya
		} else {
			p.ignoreOverride(field+".vashya", v)
		}
	}
	if v := stringValue(doc.Yoni); v != "" {
		if yoni, ok := kundali.ParseYoni(v); ok {
			chart.Yoni = yoni
		} else {
			p.ignoreOverride(field+".yoni", v)
		}
	}
	if v := stringValue(doc.Gana); v != "" {
		if gana, ok := kundali.ParseGana(v); ok {
			chart.Gana = gana
		} else {
			p.ignoreOverride(field+".gana", v)
		}
	}
	if v := stringValue(doc.Nadi); v != "" {
		if nadi, ok := kundali.ParseNadi(v); ok {
			chart.Nadi = nadi
		} else {
			p.ignoreOverride(field+".nadi", v)
		}
	}
}

func (p *Parser) ignoreOverride(field, value string) {
	p.logger.Debug("ignoring unrecognized category override",
		zap.String("field", field),
		zap.String("value", value),
	)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// ResolveOptions applies the wire document over the base options. Invalid
// values are coerced back into their documented domains.
func ResolveOptions(base matching.Options, doc *OptionsDoc) matching.Options {
	opts := base
	if doc == nil {
		return opts
	}

	if doc.MinimumViableScore != nil {
		opts.MinimumViableScore = clampInt(*doc.MinimumViableScore, 0, kundali.MaxTotal)
	}
	if doc.AllowNadiCancellation != nil {
		opts.AllowNadiCancellation = *doc.AllowNadiCancellation
	}
	if doc.ApplySimpleManglikGate != nil {
		opts.ApplySimpleManglikGate = *doc.ApplySimpleManglikGate
	}
	if doc.ManglikPolicy != nil {
		opts.ManglikPolicy = manglik.FromName(*doc.ManglikPolicy).Name()
	}
	if doc.WeightVedic != nil {
		opts.WeightVedic = *doc.WeightVedic
	}
	if doc.WeightSpice != nil {
		opts.WeightSpice = *doc.WeightSpice
	}
	if doc.IncludeIneligible != nil {
		opts.IncludeIneligible = *doc.IncludeIneligible
	}
	if doc.Concurrency != nil {
		opts.Concurrency = *doc.Concurrency
		if opts.Concurrency < 0 {
			opts.Concurrency = 0
		}
	}

	if opts.WeightVedic < 0 || opts.WeightSpice < 0 || opts.WeightVedic+opts.WeightSpice <= 0 {
		opts.WeightVedic = matching.DefaultWeightVedic
		opts.WeightSpice = matching.DefaultWeightSpice
	}

	return opts
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
