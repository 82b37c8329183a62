// Package tools implements the study menu and its single-shot tools.
//
// A single-shot tool validates its input, renders one prompt made of a fixed
// tutor persona, a tool-specific focus and the user's request, and makes one
// Gateway call. Generation failures come back as display content rather than
// errors; only invalid input and unknown tools are errors.
//
// The menu also lists the stateful flows (guided study, chavruta, document
// questions). Those are driven by their own packages and cannot be run here.
package tools
