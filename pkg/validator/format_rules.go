package validator

import (
	"regexp"
)

// siteEmailRegex accepts "local@domain.tld" where no part contains whitespace
// or a second "@". Looser than RFC 5322.
var siteEmailRegex = regexp.MustCompile(`(?i)^[^\s\v\p{Z}@]+@[^\s\v\p{Z}@]+\.[^\s\v\p{Z}@]+$`)

// IsSiteEmail reports whether s looks like an email address accepted by the
// site forms.
func IsSiteEmail(s string) bool {
	return siteEmailRegex.MatchString(s)
}

// SiteEmail validates value with IsSiteEmail. An empty value fails; combine
// with When to make it conditional.
func SiteEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsSiteEmail(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Code:    "email",
		},
	}
}
