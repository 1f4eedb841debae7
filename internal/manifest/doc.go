// Package manifest loads, edits, and re-encodes package.json files. The
// typed view covers the fields distmap reads and writes; everything else in
// the document is preserved verbatim across a load/encode round trip so a
// rewrite never drops fields the tool does not know about.
//
// # Usage
//
// Load a manifest from a package directory:
//
//	loader := manifest.NewLoader()
//	pkg, err := loader.Load("./packages/core")
//	if err != nil {
//	    return err
//	}
//	pkg.SetExports(m)
//	data, err := pkg.Encode()
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: the directory has no package.json
//   - ErrInvalidFormat: the file is not a JSON object
package manifest
