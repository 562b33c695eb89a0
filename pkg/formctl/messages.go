package formctl

import "github.com/dmitrymomot/formkit/pkg/form"

// Messages are the user-facing texts a controller writes. Failure texts come
// from the submission outcome.
type Messages struct {
	Invalid string
	Success string
}

// DefaultMessages returns the stock texts for kind.
func DefaultMessages(kind form.Kind) Messages {
	m := Messages{
		Invalid: "Please fill in the highlighted fields correctly.",
		Success: "Thanks! Your message has been sent. We'll get back to you soon.",
	}
	if kind == form.Newsletter {
		m.Invalid = "Please enter a valid email address."
		m.Success = "Thanks for subscribing!"
	}
	return m
}
