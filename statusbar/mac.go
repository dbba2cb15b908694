package statusbar

import (
	"errors"
	"net"
)

// MAC is a 6-octet hardware address, as used by ESP-NOW peers.
type MAC [6]byte

const (
	hexDigits = "0123456789ABCDEF"
	maskedMAC = "XX:XX:XX:XX:XX:"
)

// FormatMAC renders mac as colon separated uppercase hex pairs. With hide
// set, only the last octet is shown; the masking is for on-screen display,
// not for privacy guarantees.
func FormatMAC(mac MAC, hide bool) string {
	buf := make([]byte, 0, len(mac)*3-1)
	if hide {
		buf = append(buf, maskedMAC...)
		buf = appendHexByte(buf, mac[5])
		return string(buf)
	}
	for i, b := range mac {
		if i > 0 {
			buf = append(buf, ':')
		}
		buf = appendHexByte(buf, b)
	}
	return string(buf)
}

// String implements fmt.Stringer with the unmasked form.
func (m MAC) String() string {
	return FormatMAC(m, false)
}

// ParseMAC parses any of the textual forms accepted by net.ParseMAC, but
// only 6-octet (EUI-48) addresses.
func ParseMAC(s string) (MAC, error) {
	var mac MAC
	hw, err := net.ParseMAC(s)
	if err != nil {
		return mac, errors.New("parse mac " + s + ":" + err.Error())
	}
	if len(hw) != len(mac) {
		return mac, errors.New("parse mac " + s + ": not a 6-octet address")
	}
	copy(mac[:], hw)
	return mac, nil
}

func appendHexByte(buf []byte, b byte) []byte {
	return append(buf, hexDigits[b>>4], hexDigits[b&0x0F])
}
