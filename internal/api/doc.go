// Package api exposes the study flows over HTTP as JSON for the single-page
// front end. Handlers resolve the session, hold it for the duration of the
// action, call into the flow packages and translate their errors into status
// codes. Generation failures are content, not errors, except for chavruta
// replies where the transcript must visibly stay unchanged.
package api
