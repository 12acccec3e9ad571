// This package provides an implementation to read particulate matter measurements from a Plantower PMS5003 sensor.
//
// This implementation is based on the PMS5003 Arduino library by jbanaszczyk: https://github.com/jbanaszczyk/pms5003
package plantowerpms5003

import "encoding/binary"

// Command is a sensor command; its three bytes are transmitted low byte first
type Command uint32

const (
	CmdReadData    Command = 0x0000E2
	CmdModePassive Command = 0x0000E1
	CmdModeActive  Command = 0x0100E1
	CmdSleep       Command = 0x0000E4
	CmdWakeup      Command = 0x0100E4
	CmdReset       Command = 0xFFFFFF
)

const commandSize = 3

// Bytes returns the command code in transmission order
func (c Command) Bytes() []byte {
	return []byte{byte(c), byte(c >> 8), byte(c >> 16)}
}

func (c Command) String() string {
	switch c {
	case CmdReadData:
		return "read"
	case CmdModePassive:
		return "passive"
	case CmdModeActive:
		return "active"
	case CmdSleep:
		return "sleep"
	case CmdWakeup:
		return "wakeup"
	case CmdReset:
		return "reset"
	}
	return "unknown"
}

// expectsAck reports whether the sensor answers the command with a short response frame
func (c Command) expectsAck() bool {
	return c != CmdReadData && c != CmdModeActive
}

// EncodeCommand builds the complete command frame: signature, command code and checksum
func EncodeCommand(cmd Command) []byte {
	frame := make([]byte, 0, len(signature)+commandSize+2)
	frame = append(frame, signature[:]...)
	frame = append(frame, cmd.Bytes()...)
	return binary.BigEndian.AppendUint16(frame, Checksum(frame))
}
