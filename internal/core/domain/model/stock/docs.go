// Package stock implements the per-RDC inventory ledger record. A Record is
// the quantity of one product at one distribution center; the package
// enforces the ledger's single hard invariant: a quantity is never negative,
// and a rejected mutation leaves the record exactly as it was.
//
// The aggregate covers in-memory rule checking; the postgres adapter applies
// the same rules as atomic conditional updates so that no intermediate
// negative value is ever observable under concurrency.
package stock
