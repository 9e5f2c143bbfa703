// Package shim implements identity detection and delegate dispatch for the
// impersonated Java executables.
//
// At process start the executable's file name is matched against a fixed
// catalog of Java tool names (jar, java, javac, ...). A match selects shim
// mode: the dispatcher resolves the toolchain in effect for the current
// working directory and replaces itself, from the user's point of view, with
// the real tool at <java home>/bin/<name>, forwarding all arguments and
// injecting JAVA_HOME. Anything else selects primary mode and the cobra CLI
// takes over.
//
// The parent blocks until the delegate exits and propagates the delegate's
// exit code as its own; there is no timeout or cancellation.
package shim
