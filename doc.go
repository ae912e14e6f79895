// Package portfolio aggregates mutual-fund transaction history (CAS CSV
// exports) into a portfolio summary enriched with live NAV data.
//
// The pipeline is a single-pass batch transform:
//   - Import: read all transaction CSV files from a history folder into a
//     flat list of transactions.
//   - Aggregate: group transactions by fund name into holdings, resolving
//     each fund to a canonical identity (ISIN, short label, color) through
//     a configurable fund table.
//   - Value: merge live NAVs fetched from a public source (AMFI bulk file
//     or mfapi.in per-scheme lookups) and derive gains, weights and a
//     simple annualized return.
//   - Encode: write the NAV snapshot and the full portfolio summary as
//     indented JSON documents consumed by a dashboard.
//
// This package holds the domain logic; the `casnav` command-line tool wires
// it to the filesystem and the network.
package portfolio
