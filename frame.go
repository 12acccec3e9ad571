package plantowerpms5003

import "encoding/binary"

var signature = [2]byte{0x42, 0x4D}

const (
	// nominalFrameLength is the length field of a full 13 value measurement frame
	nominalFrameLength = 0x1C
	maxFrameLength     = 2 * nominalFrameLength
	wordSize           = 2
)

const (
	// FrameSize is the number of bytes on the wire for a full measurement frame
	FrameSize = (MeasurementSize + 3) * wordSize
	// ResponseFrameSize is the number of bytes on the wire for a command acknowledgement
	ResponseFrameSize = (1 + 3) * wordSize
)

// SkipToSignature discards buffered bytes until the next byte is the start of a frame signature
func SkipToSignature(t Transport) {
	for t.Available() > 0 {
		b, err := t.Peek()
		if err != nil || b == signature[0] {
			return
		}
		if _, err := t.ReadByte(); err != nil {
			return
		}
	}
}

// DecodeFrame parses one frame from t into out.
// The stream must already be aligned with SkipToSignature. Values the frame does not carry are
// zeroed and frame words beyond len(out) are consumed and discarded. out is written only on success.
func DecodeFrame(t Transport, out []uint16) error {
	if t.Available() < (len(out)+2)*wordSize+len(signature) {
		return ErrNoData
	}

	if _, err := t.ReadByte(); err != nil {
		return ErrReadError
	}
	b, err := t.ReadByte()
	if err != nil || b != signature[1] {
		return ErrReadError
	}
	sum := Checksum(signature[:])

	var word [wordSize]byte
	if n, _ := t.Read(word[:]); n != len(word) {
		return ErrReadError
	}
	length := binary.BigEndian.Uint16(word[:])
	if length == 0 || length%2 != 0 || length > maxFrameLength {
		return ErrFrameLengthMismatch
	}
	sum = addWord(sum, length)

	toRead := int(length) - wordSize
	if toRead > len(out)*wordSize {
		toRead = len(out) * wordSize
	}

	var payload [maxFrameLength]byte
	if toRead > 0 {
		if n, _ := t.Read(payload[:toRead]); n != toRead {
			return ErrReadError
		}
		sum = addBytes(sum, payload[:toRead])
	}

	var crc uint16
	for consumed := toRead; consumed < int(length); consumed += wordSize {
		if n, _ := t.Read(word[:]); n != len(word) {
			return ErrReadError
		}
		crc = binary.BigEndian.Uint16(word[:])
		if consumed < int(length)-wordSize {
			sum = addWord(sum, crc)
		}
	}

	if sum != crc {
		return ErrSumError
	}

	for i := range out {
		if (i+1)*wordSize <= toRead {
			out[i] = binary.BigEndian.Uint16(payload[i*wordSize:])
		} else {
			out[i] = 0
		}
	}
	return nil
}

// EncodeFrame builds a data frame carrying values, framed the way the sensor transmits measurements
func EncodeFrame(values []uint16) []byte {
	length := uint16((len(values) + 1) * wordSize)
	frame := make([]byte, 0, len(signature)+wordSize+int(length))
	frame = append(frame, signature[:]...)
	frame = binary.BigEndian.AppendUint16(frame, length)
	for _, v := range values {
		frame = binary.BigEndian.AppendUint16(frame, v)
	}
	return binary.BigEndian.AppendUint16(frame, Checksum(frame))
}
