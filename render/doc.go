// Package render substitutes placeholder tokens in text with literal string
// values. It uses valyala/fasttemplate with configurable delimiters (default
// "{{" and "}}"). Substitution is a single pass over the input: tokens whose
// key is absent from the replacement set are preserved verbatim, and inserted
// values are never re-scanned for further tokens.
package render
