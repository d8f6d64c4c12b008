// Package scoring turns backend payloads into evaluation results: tolerant
// JSON extraction, strict score-matrix validation, aggregation, rank
// classification, shortfall analysis and Before/After outcome.
//
// Everything here is pure and deterministic; no function performs I/O.
package scoring
