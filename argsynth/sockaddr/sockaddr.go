// Package sockaddr builds protocol-family-specific sockaddr byte buffers
// for syscall arguments typed ArgSockaddr. Only the protocol families the
// reference fuzzer actually implements get a real generator; everything
// else falls through to a zero-length buffer, matching the reference's own
// //TODO-stubbed families rather than inventing behavior for them.
package sockaddr

import "sysfuzz/rng"

// Family identifiers, matching the Linux AF_*/PF_* numbering for the
// families this package implements.
const (
	Unix    = 1
	Inet    = 2
	Netlink = 16
	Packet  = 17
	Inet6   = 10
	X25     = 9
	LLC     = 26
)

// implemented lists every family Generate can actually build, for
// RandomFamily to pick among when a descriptor carries no hint.
var implemented = []int{Unix, Inet, Inet6, Netlink, Packet, X25, LLC}

// RandomFamily picks uniformly among the families Generate implements, for
// a descriptor whose ArgSockaddr slot carries no protocol family hint.
func RandomFamily(r *rng.Source) int {
	return implemented[r.Range(uint32(len(implemented)))]
}

// Generate builds a sockaddr buffer for the given protocol family. Families
// with no generator return a zero-length buffer.
func Generate(family int, r *rng.Source) []byte {
	switch family {
	case Unix:
		return genUnix(r)
	case Inet:
		return genInet(r)
	case Inet6:
		return genInet6(r)
	case Netlink:
		return genNetlink(r)
	case Packet:
		return genPacket(r)
	case X25:
		return genX25(r)
	case LLC:
		return genLLC(r)
	default:
		return nil
	}
}

func genUnix(r *rng.Source) []byte {
	// sockaddr_un: sa_family_t + a null-terminated (or abstract, leading
	// NUL) path of up to 108 bytes.
	buf := make([]byte, 2+108)
	putU16(buf, uint16(Unix))
	path := buf[2:]
	if r.Chance(20) {
		// Abstract socket namespace: leading NUL, then random bytes.
		r.Fill(path[1:])
		path[0] = 0
		return buf
	}
	n := 1 + int(r.Range(40))
	r.Fill(path[:n])
	path[n] = 0
	return buf[:2+n+1]
}

func genInet(r *rng.Source) []byte {
	// sockaddr_in: sa_family_t, port, 4-byte address, 8 bytes padding.
	buf := make([]byte, 16)
	putU16(buf, uint16(Inet))
	putU16(buf[2:], uint16(r.Range(65536)))
	r.Fill(buf[4:8])
	return buf
}

func genInet6(r *rng.Source) []byte {
	// sockaddr_in6: sa_family_t, port, flowinfo, 16-byte address, scope id.
	buf := make([]byte, 28)
	putU16(buf, uint16(Inet6))
	putU16(buf[2:], uint16(r.Range(65536)))
	r.Fill(buf[8:24])
	return buf
}

func genNetlink(r *rng.Source) []byte {
	// sockaddr_nl: sa_family_t, pad, pid, groups.
	buf := make([]byte, 12)
	putU16(buf, uint16(Netlink))
	putU32(buf[4:], r.Uint32())
	putU32(buf[8:], r.Uint32())
	return buf
}

func genPacket(r *rng.Source) []byte {
	// sockaddr_ll: sa_family_t, protocol, ifindex, hatype, pkttype, halen,
	// 8-byte hw address.
	buf := make([]byte, 20)
	putU16(buf, uint16(Packet))
	putU16(buf[2:], uint16(r.Range(65536)))
	putU32(buf[4:], r.Uint32())
	r.Fill(buf[12:20])
	return buf
}

func genX25(r *rng.Source) []byte {
	// sockaddr_x25: sa_family_t, 16-byte x25_address string.
	buf := make([]byte, 18)
	putU16(buf, uint16(X25))
	r.Fill(buf[2:])
	return buf
}

func genLLC(r *rng.Source) []byte {
	// sockaddr_llc: sa_family_t, arp hrd, network id, mac, sap, others.
	buf := make([]byte, 20)
	putU16(buf, uint16(LLC))
	r.Fill(buf[2:])
	return buf
}

func putU16(buf []byte, v uint16) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
}

func putU32(buf []byte, v uint32) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
}
