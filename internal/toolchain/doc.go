// Package toolchain holds the toolchain registry: the data model for named
// Java installations, the default toolchain, and per-directory overrides,
// plus its validation rules, the directory-to-toolchain resolver, and the
// on-disk store.
//
// # Data Model
//
// [Config] is the root aggregate. Toolchains are keyed by name; adding an
// existing name overwrites it. Overrides form an ordered sequence and are
// not deduplicated by path; a caller wanting replace semantics removes the
// old entry first.
//
// Every path entering the registry is absolutized and lexically normalized
// at the moment it is added (see the paths package), so resolution later
// only ever compares normalized absolute paths.
//
// # Resolution
//
// [Config.Resolve] picks the toolchain for a directory: the most specific
// matching override wins (deepest path, component-wise ancestor test), and
// the default toolchain is the fallback. No override and no default means no
// resolution.
//
// # Persistence
//
// [Store] reads and writes jvms.conf (JSON) inside the installation
// directory. The wire format keeps the original field names:
//
//	{
//	  "toolchains": {"11": {"java_home": "/opt/jdk11"}},
//	  "default": "11",
//	  "overrides": [{"path": "/w/proj", "toolchain": "11"}]
//	}
//
// A missing file is an empty registry; a file that fails to decode is a hard
// error. Saves validate first unless explicitly forced, and write atomically.
package toolchain
