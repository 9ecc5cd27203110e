// Package diag defines the issue and recommendation model shared by the
// rule set, the aggregator and every reporter.
package diag
