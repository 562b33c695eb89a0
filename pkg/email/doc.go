// Package email provides mail-relay clients: services that deliver a templated
// message built from form parameters without a dedicated mail backend of the
// site's own.
//
// Every provider implements RelayClient:
//
//	Send(ctx, serviceID, templateID, params, publicKey) error
//
// The four arguments follow the hosted mail-relay model: a service (the
// outbound mail account), a template rendered by the provider with params, and
// a public key identifying the site. Providers that authenticate differently
// ignore the arguments they do not need.
//
// Supported providers:
//   - EmailJSClient: hosted REST relay that matches the model one to one
//   - PostmarkRelay: Postmark templated email (template id or alias)
//   - ResendRelay:   Resend, with the message body rendered locally
//   - DevRelay:      saves every message to disk for local development
//
// NewFromConfig builds the provider named by Config.Provider and returns a nil
// client when no provider is configured. A nil client means the mail-relay
// capability is unavailable; it is not an error.
//
// # Error Handling
//
// All providers wrap failures with ErrFailedToSendEmail and configuration
// problems with ErrInvalidConfig:
//
//	if errors.Is(err, email.ErrFailedToSendEmail) {
//	    // provider rejected or could not be reached
//	}
package email
