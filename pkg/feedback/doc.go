// Package feedback applies form UI state to a document: inline field errors,
// success and error banners, the busy spinner and the submit control.
//
// The document is a port. Document and Element describe the handful of DOM
// operations the controller needs; MemDocument implements them in memory and
// publishes every change to subscribers, which is how the HTTP adapter mirrors
// mutations to the browser.
//
// A Layout names the element ids of one form. DefaultLayout returns the
// stock ids ("contact-*", "newsletter-*"); LoadLayouts overrides them from
// YAML:
//
//	contact:
//	  form: contact-form
//	  fields:
//	    email: contact-email-input
//	  success_banner: contact-ok
//
// Bind checks that the form container, the submit control and every required
// input exist and returns a Controller. Optional elements that are missing
// are skipped silently by every Controller method.
package feedback
