// Package submission delivers validated form payloads.
//
// A Strategy sends one payload in a single attempt and reports how it went
// as an Outcome; strategies never return errors or panic across their
// boundary. Three strategies exist:
//
//   - MailRelayStrategy hands the payload to a hosted mail-relay client
//     (see package email).
//   - FormRelayStrategy POSTs the payload as JSON to a form-relay endpoint.
//   - DemoStrategy succeeds without any backend.
//
// Choose picks a strategy kind from a Config and the runtime Capabilities
// with a fixed precedence: mail relay, then form relay, then demo. Selector
// binds that choice to concrete strategies for a given form kind.
//
//	sel := submission.NewSelector(cfg,
//	    submission.WithMailClient(client),
//	    submission.WithLogger(log),
//	)
//	outcome := sel.Select(form.Contact).Send(ctx, payload)
package submission
