// Package core provides the business logic for spreadsheet import operations.
//
// This package is the heart of the importer, containing all domain logic
// independent of any UI or transport layer. It can be used by web handlers,
// CLI tools, or tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Dataset Definitions: Registered via the registry, each dataset pairs a
//     [schema.Schema] with template examples and usage notes.
//   - Store: The authoritative in-memory record collection, safe for
//     concurrent readers and writers, with change notification fan-out.
//   - Importer: The pipeline from uploaded bytes to a validated record batch
//     committed with a single atomic [Store.ReplaceAll].
//   - Export/Template: The inverse serialization back to spreadsheet bytes.
//   - Service: The entry point wiring stores, importer, and serialization
//     together per dataset.
//
// # Import pipeline
//
// An import never leaves the store half-replaced. The phases are:
//
//  1. Open the uploaded container; an unreadable file is fatal and the
//     store is untouched.
//  2. Resolve the header row against the schema's alias tables; missing
//     required columns reject the import, store untouched.
//  3. Parse data rows: blank rows (empty identity fields) are dropped
//     silently, bad rows are counted and skipped, good rows accumulate.
//  4. Commit the batch with one ReplaceAll and one change notification.
//
// # Error handling
//
// Cell coercions are total and never fail; a malformed cell yields the
// type's neutral value. Row construction failures are collected into the
// [ImportResult], not raised. Update and Delete against a missing
// identifier return [ErrNotFound] rather than panicking or corrupting
// state.
package core
