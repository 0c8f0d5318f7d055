// Package catalog implements the synthetic catalog generation core: sampling
// of (vendor, category) combinations, the bounded retry loop that turns one
// combination into an accepted product record, per-vendor title uniqueness
// tracking, and the sequential batch orchestration that ties them together.
//
// Processing is strictly sequential by design. Exclusion lists are read
// before a combination's attempts begin and the tracker is updated only on
// acceptance, so running two combinations that share a vendor concurrently
// could accept the same title twice. Anyone parallelizing this must serialize
// combinations per vendor.
package catalog
