// Package bootstrap resolves the network endpoint the server should bind to
// and produces a fully-specified launch configuration for it.
//
// The package splits startup into three explicit pieces:
//
//   - Endpoint resolution: enumerate the host's interfaces through the typed
//     net API and pick the first global-unicast IPv4 address. The "no address
//     found" case is a reported error (ErrNoAddress), never a silent empty
//     string.
//   - LaunchSpec: the validated {target, host, port, reload} tuple the server
//     process is invoked with. Its Args form is fixed: one target, one host,
//     one port, zero-or-one reload flag.
//   - Supervisor: owns spawning the server process, restarting it on source
//     changes when reload mode is enabled, and passing the child's exit code
//     through unchanged.
//
// # Environment
//
//   - LOCAL: any non-empty value enables reload mode.
//   - PORT: overrides the default listen port (4000).
//
// # Usage
//
//	spec, err := bootstrap.Resolve(os.Getenv)
//	if err != nil { ... }
//	code, err := (&bootstrap.Supervisor{Binary: self}).Run(ctx, spec)
package bootstrap
