package plantowerpms5003

import "github.com/pkg/errors"

var (
	// ErrNoData is returned when too few bytes are buffered to hold a frame; retry later
	ErrNoData = errors.New("no data")
	// ErrReadError is returned on a short read or a signature mismatch; the stream must be resynchronized
	ErrReadError = errors.New("read error")
	// ErrFrameLengthMismatch is returned when the declared frame length is odd, zero or too large
	ErrFrameLengthMismatch = errors.New("frame length mismatch")
	// ErrSumError is returned when the frame checksum does not match its contents
	ErrSumError = errors.New("checksum error")
	// ErrNoSerial is returned when the session has no transport attached
	ErrNoSerial = errors.New("serial port not initialized")
)

var statusMessages = []struct {
	err error
	msg string
}{
	{nil, "OK"},
	{ErrNoData, "No data"},
	{ErrReadError, "Read error"},
	{ErrFrameLengthMismatch, "Frame length mismatch"},
	{ErrSumError, "CRC Error"},
	{ErrNoSerial, "Serial port not initialized"},
}

// StatusMessage returns the human readable status for a result of ReadMeasurement or DecodeFrame
func StatusMessage(err error) string {
	for _, s := range statusMessages {
		if s.err == nil && err == nil {
			return s.msg
		}
		if s.err != nil && errors.Is(err, s.err) {
			return s.msg
		}
	}
	return "Status:unknown"
}
