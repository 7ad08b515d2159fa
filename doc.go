// Package fava provides a time-indexed, multi-currency price resolution
// engine: given a chronologically ordered set of exchange-rate observations
// between currency pairs, it answers "what was the most recent known rate
// between A and B as of a given day?", falling back to a one-hop
// triangulation through an intermediate currency when no direct observation
// exists.
//
// The core functionalities include:
//   - Price Index: Building an immutable, per-directed-pair chronological
//     index over irregular and possibly inconsistent rate data, with
//     synthetic inverse rates maintained in tandem.
//   - Point and Range Queries: Exact-decimal point lookups by date, raw
//     series access, and canonical commodity-pair listings.
//   - Data Persistence: Handling the encoding and decoding of rate
//     observations to and from human-readable, version-controllable JSONL.
//   - Rate Fetching: Retrieving daily reference rates from a public API to
//     extend the observation file.
//
// This package serves as the foundational logic for the `fpc` command-line
// tool. The index is built once per load and is safe for arbitrarily many
// concurrent readers; a reload builds and publishes a whole new index.
package fava
