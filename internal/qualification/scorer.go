// Package qualification scores conversation transcripts for lead intent.
// The scorer applies fixed weights to regex-detected signal categories
// and clamps the sum to [0, 100].
package qualification

import (
	"regexp"
	"strings"
)

// Signal weights. Positive signals add, objections subtract.
const (
	weightBudget      = 25
	weightTimeline    = 20
	weightFinancing   = 20
	weightLocation    = 15
	weightUrgency     = 10
	weightEngagement  = 10
	penaltyObjection  = 15
	engagementMinLen  = 400 // transcript characters
	QualifiedThreshold = 60
)

var (
	budgetPattern    = regexp.MustCompile(`(?i)\$\s?\d[\d,.]*\s?(k|m|thousand|million)?|budget|price range|afford|spend up to|between \d+`)
	timelinePattern  = regexp.MustCompile(`(?i)\b(next|within|in)\s+(a\s+)?(few\s+)?(\d+\s+)?(week|weeks|month|months|days)\b|\bby (january|february|march|april|may|june|july|august|september|october|november|december|summer|fall|winter|spring|the end of)\b|move in|closing date`)
	financingPattern = regexp.MustCompile(`(?i)pre-?approv(ed|al)|pre-?qualif(ied|y)|mortgage|lender|financing|loan officer|down payment|cash (buyer|offer)`)
	locationPattern  = regexp.MustCompile(`(?i)\b\d{5}\b|neighborhood|school district|near (downtown|the)|in the area of|zip code|close to work`)
	urgencyPattern   = regexp.MustCompile(`(?i)\bas soon as possible\b|\basap\b|urgent|right away|immediately|this week(end)?|relocat(e|ing)|lease (is )?(ending|up)`)
	objectionPattern = regexp.MustCompile(`(?i)just (looking|browsing)|not (ready|interested|sure)|too expensive|can'?t afford|maybe (later|next year)|no rush|stop calling`)
)

// Breakdown reports which signal categories matched a transcript.
type Breakdown struct {
	Budget     bool `json:"budget"`
	Timeline   bool `json:"timeline"`
	Financing  bool `json:"financing"`
	Location   bool `json:"location"`
	Urgency    bool `json:"urgency"`
	Engagement bool `json:"engagement"`
	Objection  bool `json:"objection"`
}

// Result is the outcome of scoring a transcript.
type Result struct {
	Score     int       `json:"score"`
	Qualified bool      `json:"qualified"`
	Breakdown Breakdown `json:"breakdown"`
}

// Score evaluates a transcript and returns the 0-100 qualification result.
// Matching is case-insensitive; an empty transcript scores zero.
func Score(transcript string) Result {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return Result{}
	}

	var res Result
	total := 0

	if budgetPattern.MatchString(transcript) {
		res.Breakdown.Budget = true
		total += weightBudget
	}
	if timelinePattern.MatchString(transcript) {
		res.Breakdown.Timeline = true
		total += weightTimeline
	}
	if financingPattern.MatchString(transcript) {
		res.Breakdown.Financing = true
		total += weightFinancing
	}
	if locationPattern.MatchString(transcript) {
		res.Breakdown.Location = true
		total += weightLocation
	}
	if urgencyPattern.MatchString(transcript) {
		res.Breakdown.Urgency = true
		total += weightUrgency
	}
	if len(transcript) >= engagementMinLen {
		res.Breakdown.Engagement = true
		total += weightEngagement
	}
	if objectionPattern.MatchString(transcript) {
		res.Breakdown.Objection = true
		total -= penaltyObjection
	}

	res.Score = clamp(total)
	res.Qualified = res.Score >= QualifiedThreshold
	return res
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
