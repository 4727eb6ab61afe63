package dto

import (
	"strconv"

	"github.com/jsamuelsen/exercises-service/internal/domain"
)

// ChangeQuery holds the amount for GET /api/v1/exercises/change.
type ChangeQuery struct {
	Amount *int64 `form:"amount" json:"amount" validate:"required"`
}

// ChangeResponse maps coin denominations to counts. JSON object keys are
// strings, so denominations are rendered as decimal strings.
type ChangeResponse struct {
	Amount int64            `json:"amount"`
	Coins  map[string]int64 `json:"coins"`
}

// ChangeFromDomain converts a coin decomposition to its wire form.
func ChangeFromDomain(amount int64, coins map[int]int64) ChangeResponse {
	out := make(map[string]int64, len(coins))
	for denom, count := range coins {
		out[strconv.Itoa(denom)] = count
	}
	return ChangeResponse{Amount: amount, Coins: out}
}

// FirstLowerRequest is the body of POST /api/v1/exercises/first-lower.
type FirstLowerRequest struct {
	Items     []string `json:"items"     validate:"required"`
	Predicate string   `json:"predicate" validate:"required,oneof=prefix suffix contains minlen"`
	Arg       string   `json:"arg"`
}

// FirstLowerResponse reports the first matching item, lowercased.
type FirstLowerResponse struct {
	Result string `json:"result"`
	Found  bool   `json:"found"`
}

// PowersQuery holds the parameters for GET /api/v1/exercises/powers.
type PowersQuery struct {
	// Base is a pointer so a missing base is an error rather than 0.
	Base  *int64 `form:"base"  json:"base"  validate:"required"`
	Limit int64  `form:"limit" json:"limit" validate:"gte=0"`
}

// PowersResponse lists the powers of base up to limit.
type PowersResponse struct {
	Base   int64   `json:"base"`
	Limit  int64   `json:"limit"`
	Powers []int64 `json:"powers"`
}

// SayRequest is the body of POST /api/v1/exercises/say.
type SayRequest struct {
	Words []string `json:"words"`
}

// SayResponse holds the joined phrase.
type SayResponse struct {
	Phrase string `json:"phrase"`
}

// TreeRequest is the body of POST /api/v1/exercises/tree. Query lists
// values to look up in the built tree.
type TreeRequest struct {
	Words []string `json:"words"`
	Query []string `json:"query"`
}

// TreeResponse describes the built tree.
type TreeResponse struct {
	Size     int             `json:"size"`
	Text     string          `json:"text"`
	Contains map[string]bool `json:"contains,omitempty"`
}

// TreeFromDomain renders t and answers each query.
func TreeFromDomain(t domain.Tree, query []string) TreeResponse {
	resp := TreeResponse{Size: t.Size(), Text: t.String()}
	if len(query) > 0 {
		resp.Contains = make(map[string]bool, len(query))
		for _, q := range query {
			resp.Contains[q] = t.Contains(q)
		}
	}
	return resp
}

// LineCountRequest is the body of POST /api/v1/exercises/line-count.
// Paths are relative to the configured exercises root.
type LineCountRequest struct {
	Paths []string `json:"paths" validate:"required,min=1,dive,notblank"`
}

// LineCountResponse reports meaningful lines per file and in total.
type LineCountResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// LineCountFromDomain builds the response and computes the total.
func LineCountFromDomain(counts map[string]int) LineCountResponse {
	total := 0
	for _, n := range counts {
		total += n
	}
	return LineCountResponse{Counts: counts, Total: total}
}
