// Package paths provides lexical path canonicalization for the toolchain
// registry.
//
// Every path stored in the registry (toolchain homes, override directories)
// is absolutized and normalized at the moment it is added, so later
// comparisons are always between already-normalized absolute paths.
//
// Normalization is purely lexical: it never consults the filesystem and
// never resolves symlinks. Two paths that reach the same directory through
// different symlinks are different paths to this package.
package paths
