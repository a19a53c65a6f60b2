// Package search ranks catalog entries against a free-text query.
//
// The score of an entry is the sum of three heuristics computed over its
// lowercased searchable text (name, description and tags joined by spaces):
//
//   - ExactMatchScore when the whole query is a substring;
//   - TokenMatchScore for every whitespace-delimited query token found;
//   - SubsequenceScore per query character matched in order.
//
// The components overlap on purpose: a query matching exactly also earns
// token and subsequence points.
package search
