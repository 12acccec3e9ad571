package plantowerpms5003_test

import (
	"testing"
	"time"

	"github.com/go-sensors/plantowerpms5003"
	"github.com/stretchr/testify/assert"
	"go.bug.st/serial"
)

func Test_GetDefaultSerialMode_returns_expected_configuration(t *testing.T) {
	// Arrange
	expected := &serial.Mode{
		BaudRate: 9600,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	// Act
	actual := plantowerpms5003.GetDefaultSerialMode()

	// Assert
	assert.NotNil(t, actual)
	assert.EqualValues(t, expected, actual)
}

func Test_GetDefaultSerialMode_returns_a_fresh_copy(t *testing.T) {
	// Arrange
	first := plantowerpms5003.GetDefaultSerialMode()

	// Act
	first.BaudRate = 115200
	second := plantowerpms5003.GetDefaultSerialMode()

	// Assert
	assert.Equal(t, plantowerpms5003.BaudRate, second.BaudRate)
}

func Test_timeouts_cover_a_frame_at_the_sensor_baud_rate(t *testing.T) {
	// Arrange
	bitsPerByte := 10
	frameTime := time.Duration(plantowerpms5003.FrameSize*bitsPerByte) * time.Second / plantowerpms5003.BaudRate

	// Assert
	assert.True(t, plantowerpms5003.TimeoutPassive >= 2*frameTime)
	assert.True(t, plantowerpms5003.TimeoutActive > plantowerpms5003.TimeoutPassive)
	assert.True(t, plantowerpms5003.WakeupTime > plantowerpms5003.TimeoutActive)
}
