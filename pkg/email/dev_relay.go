package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevRelay implements RelayClient for local development.
// It saves each message as an HTML preview plus a JSON record instead of
// handing it to a mail provider.
type DevRelay struct {
	dir string
	now func() time.Time
}

// NewDevRelay creates a development relay that writes into dir.
// The directory is created on first send if it does not exist.
func NewDevRelay(dir string) *DevRelay {
	return &DevRelay{dir: dir, now: time.Now}
}

// devRecord is the JSON document written for every message.
type devRecord struct {
	Timestamp  string            `json:"timestamp"`
	ServiceID  string            `json:"service_id"`
	TemplateID string            `json:"template_id"`
	PublicKey  string            `json:"public_key,omitempty"`
	Params     map[string]string `json:"params"`
}

// Send writes <timestamp>_<template>.html and .json into the relay directory.
func (d *DevRelay) Send(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) error {
	if err := validateSend(serviceID, templateID, params); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405.000000"), sanitizeFilename(templateID))

	htmlBody, _, err := renderMessage(subjectFor(templateID, params), params)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(htmlBody), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	data, err := json.MarshalIndent(devRecord{
		Timestamp:  now.Format(time.RFC3339),
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
		Params:     params,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal record: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

var filenameRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts s into a lower-case, filesystem-safe name.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = filenameRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "message"
	}
	return strings.ToLower(s)
}
