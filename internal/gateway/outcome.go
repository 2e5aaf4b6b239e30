package gateway

import "fmt"

// OutcomeKind classifies how a gateway call ended. Callers switch on this
// instead of catching heterogeneous error types.
type OutcomeKind int

const (
	// OutcomeSuccess: 2xx with a parseable JSON body. Note that the body's
	// own ok flag may still be false — that is a domain failure owned by
	// the caller, not a transport problem.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeUpstreamError: non-2xx HTTP status from the gateway.
	OutcomeUpstreamError
	// OutcomeTimeout: the per-call deadline elapsed. Kept distinct from
	// UpstreamError because the user guidance differs (retry later).
	OutcomeTimeout
	// OutcomeTransportFailure: DNS/connect errors or a malformed response body.
	OutcomeTransportFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeUpstreamError:
		return "upstream_error"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Outcome is the classified result of a single gateway call. Created per
// request, consumed immediately, discarded.
type Outcome struct {
	Kind OutcomeKind

	// HTTPStatus and BodyExcerpt are set for OutcomeUpstreamError.
	// BodyExcerpt is bounded to excerptLimit characters.
	HTTPStatus  int
	BodyExcerpt string

	// Detail is a short diagnostic string for OutcomeTransportFailure.
	Detail string
}

func successOutcome() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

func upstreamOutcome(status int, excerpt string) Outcome {
	return Outcome{Kind: OutcomeUpstreamError, HTTPStatus: status, BodyExcerpt: excerpt}
}

func timeoutOutcome() Outcome {
	return Outcome{Kind: OutcomeTimeout}
}

func transportOutcome(detail string) Outcome {
	return Outcome{Kind: OutcomeTransportFailure, Detail: detail}
}
