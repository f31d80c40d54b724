package wishlist

// IndexToLabel converts a 0-based position into its display label using
// bijective base-26 numbering: 0→A, 25→Z, 26→AA, 701→ZZ, 702→AAA.
func IndexToLabel(index int) string {
	if index < 0 {
		return ""
	}
	n := index + 1
	// 14 digits cover the full int64 range; one label per position, no cap.
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}
