// Package document turns an uploaded HTML or PDF file into plain text and
// answers questions about it through the generation gateway.
//
// Extraction is stateless: HTML yields the concatenated text of its paragraph
// elements, PDF the concatenated plain text of its pages. The question prompt
// embeds a bounded prefix of that text and instructs the model to answer only
// from it.
package document
