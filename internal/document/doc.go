// Package document provides the parsed-document tree the tidying engine
// consumes: nodes with kinds and byte-offset spans, plus a small org-style
// scanner that recognizes headlines and property drawers.
//
// The engine itself never inspects document text; it only walks this tree.
// Offsets in node spans are byte offsets into the source text, taken
// verbatim by downstream consumers with no adjustment.
package document
