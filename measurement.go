package plantowerpms5003

import "math"

// MeasurementSize is the number of 16-bit values in a measurement frame
const MeasurementSize = 13

// Indexes of the values within a Measurement, in wire order
const (
	PM1_0CF1 = iota
	PM2_5CF1
	PM10CF1
	PM1_0
	PM2_5
	PM10
	Particles0_3
	Particles0_5
	Particles1_0
	Particles2_5
	Particles5_0
	Particles10
	Reserved
)

const (
	concentrationCFStart = PM1_0CF1
	concentrationStart   = PM1_0
	particlesStart       = Particles0_3
	reservedStart        = Reserved
)

const (
	unitMass  = "µg/m³"
	unitCount = "/0.1L"
)

var names = [MeasurementSize]string{
	"PM1.0, CF=1",
	"PM2.5, CF=1",
	"PM10.  CF=1",
	"PM1.0",
	"PM2.5",
	"PM10.",
	"Particles > 0.3 micron",
	"Particles > 0.5 micron",
	"Particles > 1.0 micron",
	"Particles > 2.5 micron",
	"Particles > 5.0 micron",
	"Particles > 10. micron",
	"Reserved_0",
}

var metrics = [MeasurementSize]string{
	unitMass, unitMass, unitMass,
	unitMass, unitMass, unitMass,
	unitCount, unitCount, unitCount, unitCount, unitCount, unitCount,
	"???",
}

var diameters = [MeasurementSize]float64{
	1.0, 2.5, 10.0,
	1.0, 2.5, 10.0,
	0.3, 0.5, 1.0, 2.5, 5.0, 10.0,
	math.NaN(),
}

// Measurement is one decoded data frame, laid out exactly as transmitted
type Measurement [MeasurementSize]uint16

func clampIndex(index int) int {
	if index < 0 || index >= MeasurementSize {
		return MeasurementSize - 1
	}
	return index
}

// Name returns the label of the value at index; out of range indexes map to the reserved slot
func Name(index int) string {
	return names[clampIndex(index)]
}

// Metric returns the unit of the value at index
func Metric(index int) string {
	return metrics[clampIndex(index)]
}

// Diameter returns the nominal particle diameter in micrometres for the value at index
func Diameter(index int) float64 {
	return diameters[clampIndex(index)]
}

// ConcentrationCF returns PM1.0, PM2.5 and PM10 under standard particle (CF=1) calibration
func (m *Measurement) ConcentrationCF() []uint16 {
	return m[concentrationCFStart:concentrationStart]
}

// Concentration returns PM1.0, PM2.5 and PM10 under atmospheric environment
func (m *Measurement) Concentration() []uint16 {
	return m[concentrationStart:particlesStart]
}

// Particles returns the particle counts beyond 0.3, 0.5, 1.0, 2.5, 5.0 and 10 µm per 0.1L of air
func (m *Measurement) Particles() []uint16 {
	return m[particlesStart:reservedStart]
}

// Reserved returns the trailing reserved word
func (m *Measurement) Reserved() []uint16 {
	return m[reservedStart:]
}

// CleanlinessLevel returns the ISO 14644-1 class derived from the particle count at index
func (m *Measurement) CleanlinessLevel(index int) float64 {
	return cleanlinessLevel(m[clampIndex(index)], Diameter(index))
}

// CleanlinessLevels returns the ISO 14644-1 class for each of the six particle counts
func (m *Measurement) CleanlinessLevels() []float64 {
	levels := make([]float64, 0, reservedStart-particlesStart)
	for i := particlesStart; i < reservedStart; i++ {
		levels = append(levels, m.CleanlinessLevel(i))
	}
	return levels
}

func cleanlinessLevel(count uint16, diameter float64) float64 {
	if count == 0 {
		return 0
	}
	return 4 + math.Log10(float64(count)*math.Pow(10*diameter, 2.08))
}
