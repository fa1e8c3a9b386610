package email

import "strings"

// CleanAddress derives a bare address from a display sender string.
// "Jane Doe <jane@x.com>" yields "jane@x.com"; a string without angle
// brackets is returned unchanged.
func CleanAddress(sender string) string {
	i := strings.Index(sender, "<")
	if i < 0 {
		return sender
	}

	addr := sender[i+1:]
	if j := strings.Index(addr, ">"); j >= 0 {
		addr = addr[:j]
	}
	return addr
}
