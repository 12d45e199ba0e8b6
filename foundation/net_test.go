package foundation

import (
	"net/netip"
	"testing"
)

func v4(t *testing.T, s string) [4]byte {
	t.Helper()
	a, err := netip.ParseAddr(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return a.As4()
}

func v6(t *testing.T, s string) [16]byte {
	t.Helper()
	a, err := netip.ParseAddr(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return a.As16()
}

func TestIPv4Classification(t *testing.T) {
	for _, s := range []string{"10.0.0.1", "172.16.0.1", "172.31.255.254", "192.168.1.1"} {
		if !IPv4Private(v4(t, s)) {
			t.Fatalf("%s should classify private", s)
		}
	}
	for _, s := range []string{"8.8.8.8", "172.32.0.1", "192.169.0.1", "9.255.255.255"} {
		if IPv4Private(v4(t, s)) {
			t.Fatalf("%s should not classify private", s)
		}
	}
	if !IPv4Public(v4(t, "8.8.8.8")) {
		t.Fatal("8.8.8.8 should classify public")
	}
	if !IPv4Loopback(v4(t, "127.0.0.1")) {
		t.Fatal("127.0.0.1 should classify loopback")
	}
	if IPv4Public(v4(t, "127.0.0.1")) || IPv4Public(v4(t, "224.0.0.1")) ||
		IPv4Public(v4(t, "0.0.0.0")) || IPv4Public(v4(t, "255.255.255.255")) {
		t.Fatal("reserved ranges must not classify public")
	}
}

func TestIPv6Classification(t *testing.T) {
	if !IPv6UniqueLocal(v6(t, "fc00::1")) || !IPv6UniqueLocal(v6(t, "fd12:3456::1")) {
		t.Fatal("fc00::/7 should classify private")
	}
	if IPv6UniqueLocal(v6(t, "2001:4860::1")) {
		t.Fatal("2001:4860::1 should not classify private")
	}
	if !IPv6Public(v6(t, "2001:4860::1")) {
		t.Fatal("2001:4860::1 should classify public")
	}
	if !IPv6Loopback(v6(t, "::1")) {
		t.Fatal("::1 should classify loopback")
	}
	if IPv6Loopback(v6(t, "::2")) {
		t.Fatal("::2 should not classify loopback")
	}
	if IPv6Public(v6(t, "ff02::1")) || IPv6Public(v6(t, "::")) {
		t.Fatal("multicast and unspecified must not classify public")
	}
}

func TestMACClassification(t *testing.T) {
	unicast := [6]byte{0x00, 0x1A, 0x2B, 0x3C, 0x4D, 0x5E}
	multicast := [6]byte{0x01, 0x00, 0x5E, 0x00, 0x00, 0x01}
	local := [6]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	broadcast := [6]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	if !MACUnicast(unicast) || MACMulticast(unicast) {
		t.Fatal("LSB clear should classify unicast")
	}
	if !MACMulticast(multicast) || MACUnicast(multicast) {
		t.Fatal("LSB set should classify multicast")
	}
	if !MACLocal(local) || MACUniversal(local) {
		t.Fatal("second bit set should classify locally administered")
	}
	if !MACUniversal(unicast) {
		t.Fatal("second bit clear should classify universal")
	}
	if !MACBroadcast(broadcast) || MACBroadcast(unicast) {
		t.Fatal("broadcast detection wrong")
	}
}

func TestPortClassification(t *testing.T) {
	cases := []struct {
		port uint16
		want PortClass
	}{
		{0, PortWellKnown},
		{80, PortWellKnown},
		{1023, PortWellKnown},
		{1024, PortRegistered},
		{8080, PortRegistered},
		{49151, PortRegistered},
		{49152, PortDynamic},
		{60000, PortDynamic},
		{65535, PortDynamic},
	}
	for _, tc := range cases {
		if got := ClassifyPort(tc.port); got != tc.want {
			t.Fatalf("ClassifyPort(%d) = %s, want %s", tc.port, got, tc.want)
		}
	}
	if !PrivilegedPort(80) || PrivilegedPort(8080) {
		t.Fatal("privileged boundary wrong")
	}
}

func TestUUIDBits(t *testing.T) {
	var b [16]byte
	b[6] = 0x4A // version 4
	b[8] = 0x9F // 10xxxxxx variant

	if !UUIDHasVersion(b, 4) || UUIDHasVersion(b, 7) {
		t.Fatal("version nibble misread")
	}
	if !UUIDVariantRFC4122(b) {
		t.Fatal("variant bits misread")
	}
	b[8] = 0xC0 // 11xxxxxx: not the RFC 4122 variant
	if UUIDVariantRFC4122(b) {
		t.Fatal("variant 11xxxxxx accepted")
	}

	var nilID [16]byte
	if !UUIDNil(nilID) || UUIDNil(b) {
		t.Fatal("nil detection wrong")
	}

	rep := UUIDCheck(b)
	if rep.Version != 4 || rep.VariantRFC4122 || rep.Nil {
		t.Fatalf("unexpected report %+v", rep)
	}
}
