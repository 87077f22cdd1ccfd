package bootstrap

import (
	"fmt"
	"strconv"
)

const (
	// DefaultPort is the listen port used when $PORT is unset.
	DefaultPort = 4000

	// DefaultTarget is the subcommand of the server binary that actually
	// starts the HTTP server.
	DefaultTarget = "start"
)

// LaunchSpec is the fully-resolved launch configuration for the server
// process. It is populated once at startup and validated before use.
type LaunchSpec struct {
	// Target is the server entry point (the subcommand to invoke).
	Target string
	// Host is the bind address.
	Host string
	// Port is the listen port.
	Port int
	// Reload enables restart-on-change mode.
	Reload bool
}

// Resolve builds the launch configuration from the environment and the
// host's interface addresses. getenv is usually os.Getenv.
//
// When no IPv4 address can be discovered, the returned spec carries an empty
// Host together with ErrNoAddress, so callers decide whether the failure is
// fatal. Validate rejects such a spec.
func Resolve(getenv func(string) string) (LaunchSpec, error) {
	spec := LaunchSpec{
		Target: DefaultTarget,
		Port:   DefaultPort,
		Reload: getenv("LOCAL") != "",
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return spec, fmt.Errorf("invalid $PORT %q: %w", v, err)
		}
		spec.Port = port
	}

	host, err := ResolveBindAddress()
	spec.Host = host
	if err != nil {
		return spec, err
	}
	return spec, nil
}

// Validate reports whether the spec is complete enough to launch a server.
func (s LaunchSpec) Validate() error {
	if s.Target == "" {
		return fmt.Errorf("launch spec: target must not be empty")
	}
	if s.Host == "" {
		return fmt.Errorf("launch spec: bind address must not be empty")
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("launch spec: port %d out of range", s.Port)
	}
	return nil
}

// Args returns the argument vector the server process is invoked with:
// the target, the host, the port, and the reload flag when enabled, in that
// fixed order.
func (s LaunchSpec) Args() []string {
	args := []string{s.Target, "--host", s.Host, "--port", strconv.Itoa(s.Port)}
	if s.Reload {
		args = append(args, "--reload")
	}
	return args
}
