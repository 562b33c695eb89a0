package submission

// OutcomeKind classifies a settled submission.
type OutcomeKind uint8

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeServiceFailure
	OutcomeNetworkFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeServiceFailure:
		return "service_failure"
	case OutcomeNetworkFailure:
		return "network_failure"
	default:
		return "unknown"
	}
}

// User-facing failure messages. Causes are logged, never shown.
const (
	ServiceFailureMessage = "Sorry, we couldn't send your request. Please try again."
	NetworkFailureMessage = "We couldn't reach the server. Please check your connection and try again later."
)

// Outcome is the result of one delivery attempt. Message is empty for
// Success and user-facing for failures.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

func Success() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

// ServiceFailure means the backend was reached but declined the request.
func ServiceFailure(message string) Outcome {
	if message == "" {
		message = ServiceFailureMessage
	}
	return Outcome{Kind: OutcomeServiceFailure, Message: message}
}

// NetworkFailure means the request could not be completed at all.
func NetworkFailure(message string) Outcome {
	if message == "" {
		message = NetworkFailureMessage
	}
	return Outcome{Kind: OutcomeNetworkFailure, Message: message}
}

func (o Outcome) IsSuccess() bool { return o.Kind == OutcomeSuccess }

func (o Outcome) String() string { return o.Kind.String() }
