// File: resolv/source.go
// Package resolv
// Author: momentics <momentics@gmail.com>

package resolv

import "net"

// defaultProbeDest is an arbitrary routable address; no traffic is ever
// sent toward it. The connected-UDP trick only asks the OS which local
// address it would pick for the route.
const (
	defaultProbeDest = "1.2.3.4"
	probePort        = "31337"
)

// SourceAddress returns the local address the OS would use to reach dest
// (default "1.2.3.4"). It opens an ephemeral connected UDP endpoint, reads
// the chosen local address back, and closes it — nothing is transmitted.
//
// This call never fails: on any error it returns the loopback literal
// "127.0.0.1". This is the only swallowed error in the layer; callers that
// need to distinguish "no route" from "loopback" must probe explicitly.
func SourceAddress(dest ...string) string {
	target := defaultProbeDest
	if len(dest) > 0 && dest[0] != "" {
		target = dest[0]
	}
	conn, err := net.Dial("udp", net.JoinHostPort(target, probePort))
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	ua, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || ua.IP == nil {
		return "127.0.0.1"
	}
	return ua.IP.String()
}
