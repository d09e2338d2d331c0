// Package metadata holds the harmonization tables used to annotate
// correlation records: a metabolite table (cohort-specific metabolite id →
// universal id + display name) and a cohort variable map (cohort variable
// name → definition + canonical reference id).
//
// Lookups are case-insensitive; keys are normalized once at construction.
// The reverse index (reference id → variable) serves Batch-mode models,
// which reference variables by canonical id rather than raw cohort name.
//
// A nil *MetaData is a valid "no metadata" value: every lookup misses, and
// annotation passes raw specs through unchanged.
package metadata
