package bootstrap

import (
	"errors"
	"fmt"
	"net"
)

// ErrNoAddress is returned when no usable IPv4 address is assigned to any of
// the host's interfaces.
var ErrNoAddress = errors.New("no IPv4 address found on any interface")

// InterfaceAddrs pairs an interface name with the addresses assigned to it.
type InterfaceAddrs struct {
	Name  string
	Addrs []net.Addr
}

// HostAddrs enumerates the addresses of all interfaces that are up and not
// loopback, in the order the kernel reports them.
func HostAddrs() ([]InterfaceAddrs, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	var out []InterfaceAddrs
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			// A single misbehaving interface should not abort discovery.
			continue
		}
		out = append(out, InterfaceAddrs{Name: iface.Name, Addrs: addrs})
	}
	return out, nil
}

// FirstIPv4 returns the first global-unicast IPv4 address found in ifaces.
// Subsequent matches are ignored. It returns ErrNoAddress when none exists.
func FirstIPv4(ifaces []InterfaceAddrs) (string, error) {
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			ip := addrIP(addr)
			if ip == nil {
				continue
			}
			v4 := ip.To4()
			if v4 == nil || !ip.IsGlobalUnicast() {
				continue
			}
			return v4.String(), nil
		}
	}
	return "", ErrNoAddress
}

// ResolveBindAddress picks the bind address for the server: the first IPv4
// address of the first up, non-loopback interface.
func ResolveBindAddress() (string, error) {
	ifaces, err := HostAddrs()
	if err != nil {
		return "", err
	}
	return FirstIPv4(ifaces)
}

func addrIP(addr net.Addr) net.IP {
	switch a := addr.(type) {
	case *net.IPNet:
		return a.IP
	case *net.IPAddr:
		return a.IP
	default:
		return nil
	}
}
