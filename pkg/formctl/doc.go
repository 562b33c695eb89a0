// Package formctl drives one form instance through a submission.
//
// A Controller owns a state machine with five states:
//
//	idle -> validating -> submitting -> settled_success -> idle
//	                   \             \-> settled_failure -> idle
//	                    \-> idle (invalid input)
//
// Submit and Start only begin from idle; any other state fails fast with
// ErrBusy and leaves the form untouched, so a double click never sends twice.
// Start writes new field values only after claiming the controller. Validation
// runs synchronously. A valid payload is handed to the strategy picked by the
// selector and awaited through an async.Future; all UI effects of the attempt
// are applied after it settles. Field values are cleared on success and kept
// on failure.
//
// Every submission gets a UUID, stored in the context passed to the strategy
// and to observers. LogExtractor adds it to every log record.
package formctl
