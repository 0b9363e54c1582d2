package schedule

// Package schedule implements the greedy staffing engine. It orders projects
// by priority, fills each required skill slot with the best-scoring available
// employee and keeps the regular/overtime ledger consistent. The pass is
// single-shot and deterministic: it never backtracks and breaks score ties on
// the lowest employee id.
