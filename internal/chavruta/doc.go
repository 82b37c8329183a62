// Package chavruta implements the interactive study-partner session: an
// open-ended, turn-taking dialogue in which the model impersonates a named
// scholar (the persona) and discusses one topic with the student.
//
// A Session is Idle or Active. Start generates the persona's opening turn from
// a hidden system instruction that is never shown in the transcript but is sent
// with every later prompt. Send appends the student's turn and the persona's
// reply, rolling the student's turn back if generation fails. End, or a message
// that is one of the exit words, clears everything and returns to Idle.
package chavruta
