// Package formserver exposes the contact and newsletter forms over HTTP.
//
// GET / renders a page whose forms are driven by datastar attributes. Every
// page view gets its own form instance id; the instance (one in-memory
// document and FormController per form) lives in a bounded LRU registry and
// is created lazily on first submit.
//
// POST /forms/{kind} reads the datastar signals posted by the page, hands
// the field values to the controller's Start and streams every resulting UI
// mutation back as datastar signal patches over Server-Sent Events. A submit
// against a busy instance answers 409 and never writes its values.
package formserver
