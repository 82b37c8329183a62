// Package wizard implements the Guided Study Wizard: a linear, staged dialogue
// that walks a student through a fixed sequence of prompts about a weekly
// reading or a general theme.
//
// The wizard is an explicit state machine. Collecting (stage 0) moves to stage
// 1 on Start, each Advance moves forward by exactly one stage, and once the last
// stage's content has been produced the wizard is Terminal and only Reset is
// offered. A stage's content is produced lazily by View, exactly once per visit
// to that stage, so redrawing the page never issues another model call.
package wizard
