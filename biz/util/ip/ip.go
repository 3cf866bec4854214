package ip

import (
	"encoding/hex"
	"net"
	"runtime"
)

func IPv4() string {
	if addr := firstIPv4(); addr != nil {
		return addr.String()
	}
	return ""
}

// IPv4Hex returns the host address as 8 hex chars, used as a node marker in
// generated ids.
func IPv4Hex() string {
	if runtime.GOOS == "windows" {
		return "00000000"
	}
	if addr := firstIPv4(); addr != nil {
		return hex.EncodeToString(addr)
	}
	return ""
}

func firstIPv4() net.IP {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}

	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() {
			if v4 := ipNet.IP.To4(); v4 != nil {
				return v4
			}
		}
	}

	return nil
}
