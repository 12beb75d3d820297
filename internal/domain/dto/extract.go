package dto

import "github.com/guttosm/tradelens/internal/extraction"

// ExtractResponse carries what was read from a screenshot and the draft
// form with those values applied.
type ExtractResponse struct {
	Extracted extraction.Result `json:"extracted"`
	Fields    []string          `json:"fields"`
	Draft     *TradeRequest     `json:"draft,omitempty"`
}

// ExtractTextRequest submits already-recognized text for parsing.
type ExtractTextRequest struct {
	Text string `json:"text" binding:"required" example:"GBPUSD SELL 1.1"`
}

// NewExtractResponse applies res to draft and packages both.
func NewExtractResponse(res extraction.Result, draft TradeRequest) ExtractResponse {
	draft.Overlay(res)
	fields := res.Fields()
	if fields == nil {
		fields = []string{}
	}
	return ExtractResponse{Extracted: res, Fields: fields, Draft: &draft}
}
