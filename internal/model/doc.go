// Package model defines the core data structures used throughout passcheck.
//
// This package contains the following main types:
//   - Criterion: A single named pass/fail security check
//   - CriteriaSet: The ordered collection of criteria evaluated for a password
//   - Strength: The five-tier qualitative strength classification
//   - AnalysisResult: The complete analysis output for one password
//   - Summary: Aggregated tier counts for a batch of analyses
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (analyzer, report, batch) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output, with
// one deliberate exception: the raw password is never serialized. Writing an
// analyzed password into a report file would be a persistence defect.
package model
