// Package exports infers the publish-time exports map of a package from its
// build outputs. It groups outputs into export targets (root entry, single
// files, folder wildcards), classifies each file by suffix, and emits the
// nested conditional structure consumers resolve through.
//
// # Generation
//
// Build entries come from the bundling pipeline (or a directory scan):
//
//	entries := []domain.BuildEntry{
//	    {Path: "index.mjs"},
//	    {Path: "index.cjs"},
//	    {Path: "index.d.mts"},
//	}
//	m := exports.Generate(entries, "dist", exports.ModeAll())
//
// produces a map ready to merge into package.json:
//
//	{
//	  ".": {
//	    "types": "./dist/index.d.mts",
//	    "import": {"types": "./dist/index.d.mts", "default": "./dist/index.mjs"},
//	    "require": {"default": "./dist/index.cjs"}
//	  }
//	}
//
// # Inference
//
// InferExportType and ExtractExportFilenames work the other direction: given
// a manifest's existing exports declaration, they resolve each referenced
// file to its module system (ESM or CJS).
//
// All functions are pure and never fail: unrecognized suffixes or condition
// names degrade to "not classified" rather than returning errors.
package exports
