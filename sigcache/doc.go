// Package sigcache memoizes successful signature verifications so the same
// expensive public-key check is not executed twice for identical inputs, e.g.
// once when a transaction is admitted to the mempool and again when its block
// is validated.
//
// Only valid results are cached. Entries are fingerprints of
// (message hash, public key, signature) keyed with a per-cache random nonce,
// so no signature or key material is retained and external parties cannot
// precompute entries. The store is memory-bounded with approximate random
// eviction; re-verifying an evicted signature is cheap compared to exact
// recency tracking.
package sigcache
