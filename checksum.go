package plantowerpms5003

// Checksum is the byte-wise sum the sensor appends to every frame, wrapping at 16 bits
func Checksum(buf []byte) uint16 {
	var sum uint16
	return addBytes(sum, buf)
}

func addBytes(sum uint16, buf []byte) uint16 {
	for _, b := range buf {
		sum += uint16(b)
	}
	return sum
}

// addWord folds both bytes of a 16-bit field into sum
func addWord(sum uint16, word uint16) uint16 {
	return sum + word>>8 + word&0xFF
}
