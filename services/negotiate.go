package services

import "math"

// Negotiation policy constants. The buffers are relative to the internal
// estimate: up to 10% over is a fair vendor margin, up to 25% over is
// negotiable, anything beyond that gets a firm counter.
const (
	AcceptBuffer     = 0.10
	NegotiableBuffer = 0.25
)

// Advice classifies a vendor quote against the internal estimate.
type Advice int

const (
	AdviceAccept Advice = iota
	AdviceCounterModerate
	AdviceCounterFirm
)

func (a Advice) String() string {
	switch a {
	case AdviceAccept:
		return "accept"
	case AdviceCounterModerate:
		return "counter_moderate"
	case AdviceCounterFirm:
		return "counter_firm"
	default:
		return "unknown"
	}
}

// Negotiate compares a vendor quote against the estimate total and returns
// the advice category plus a suggested counter-offer. Quotes within the
// accept buffer are taken as-is. Negotiable quotes get a counter that
// splits the accept buffer (estimate +5%); steep quotes get a firm counter
// at estimate +10%. Counter-offers are rounded to the nearest 100 rupees.
func Negotiate(estimateTotal, vendorQuote float64) (Advice, float64) {
	switch {
	case vendorQuote <= estimateTotal*(1+AcceptBuffer):
		return AdviceAccept, vendorQuote
	case vendorQuote <= estimateTotal*(1+NegotiableBuffer):
		return AdviceCounterModerate, roundToHundred(estimateTotal * (1 + AcceptBuffer/2))
	default:
		return AdviceCounterFirm, roundToHundred(estimateTotal * (1 + AcceptBuffer))
	}
}

// roundToHundred rounds to the nearest 100, halves away from zero.
func roundToHundred(amount float64) float64 {
	return math.Round(amount/100) * 100
}
