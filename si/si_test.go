package si

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	t.Run("prefixed unit", func(t *testing.T) {
		assert.Equal(t, 1000.0, ChargeFromCoulombs(1.0).ToMillicoulombs())
		assert.Equal(t, 3000.0, DistanceFromKilometers(3.0).ToMeters())
	})

	t.Run("division", func(t *testing.T) {
		got := ChargeFromCoulombs(2.0).DivTime(TimeFromSeconds(4.0))
		assert.Equal(t, Current[float64]{A: 0.5}, got)
	})

	t.Run("multiplication", func(t *testing.T) {
		got := VoltageFromVolts(10.0).MulCurrent(CurrentFromAmperes(2.0))
		assert.Equal(t, Power[float64]{W: 20}, got)
	})

	t.Run("scalar inverse", func(t *testing.T) {
		c := CapacitanceFromFarads(4.0)
		assert.Equal(t, Elastance[float64]{PerF: 0.25}, c.ScalarDiv(1.0))
		assert.Equal(t, c.Inv(), c.ScalarDiv(1.0))
		assert.Equal(t, c, c.Inv().Inv())
	})

	t.Run("time constant", func(t *testing.T) {
		got := ResistanceFromOhms(100.0).MulCapacitance(CapacitanceFromFarads(0.001))
		assert.Equal(t, Time[float64]{S: 0.1}, got)
	})

	t.Run("battery charge", func(t *testing.T) {
		q := CapacitanceFromMicrofarads(4.7).MulVoltage(VoltageFromVolts(5.0))
		assert.InEpsilon(t, 6.527777777777778e-06, q.ToMilliampereHours(), 1e-12)
	})

	t.Run("law edge", func(t *testing.T) {
		torque := MomentOfInertiaFromKilogramSquareMeters(2.0).MulAngularAcceleration(AngularAccelerationFromRadiansPerSecondSquared(3.0))
		assert.Equal(t, Torque[float64]{Nm: 6}, torque)
		dose := EnergyFromJoules(10.0).DivMass(MassFromKilograms(4.0))
		assert.Equal(t, AbsorbedDose[float64]{Gy: 2.5}, dose)
	})
}

func TestChargeCountingUnits(t *testing.T) {
	const e = 1.602176634e-19
	assert.InEpsilon(t, -e, ChargeFromElectronCharges(1.0).ToCoulombs(), 1e-12)
	assert.InEpsilon(t, e, ChargeFromProtonCharges(1.0).ToCoulombs(), 1e-12)
	assert.InEpsilon(t, -2.0, ChargeFromProtonCharges(2.0).ToElectronCharges(), 1e-12)

	ions := ChargeFromElectronCharges(3.0).Add(ChargeFromProtonCharges(1.0))
	assert.InEpsilon(t, -2*e, ions.ToCoulombs(), 1e-12)
}

func TestTemperature(t *testing.T) {
	assert.InDelta(t, 373.15, TemperatureFromDegreesCelsius(100.0).ToKelvin(), 1e-9)
	assert.InDelta(t, 100.0, TemperatureFromDegreesFahrenheit(212.0).ToDegreesCelsius(), 1e-9)
	assert.InDelta(t, -40.0, TemperatureFromDegreesCelsius(-40.0).ToDegreesFahrenheit(), 1e-9)
	assert.Equal(t, TemperatureFromKelvin(1.5), TemperatureFromDegreesKelvin(1.5))
}

func TestNumericKinds(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		d := DistanceFromKilometers(3)
		assert.Equal(t, Distance[int]{M: 3000}, d)
		assert.Equal(t, 3, d.ToKilometers())
		// Integer kinds round to the nearest value.
		assert.Equal(t, 2, CapacitanceFromMillifarads(1500).ToFarads())
	})

	t.Run("float32", func(t *testing.T) {
		assert.Equal(t, float32(120), TimeFromMinutes(float32(2)).ToSeconds())
	})

	t.Run("complex", func(t *testing.T) {
		v := VoltageFromMillivolts(complex(1000, 2000)).ToVolts()
		assert.InDelta(t, 1.0, real(v), 1e-12)
		assert.InDelta(t, 2.0, imag(v), 1e-12)
		p := VoltageFromVolts(v).MulCurrent(CurrentFromAmperes(complex(0, 1)))
		assert.InDelta(t, -2.0, real(p.W), 1e-12)
		assert.InDelta(t, 1.0, imag(p.W), 1e-12)
	})
}

func TestArithmetic(t *testing.T) {
	a, b := MassFromKilograms(5.0), MassFromGrams(500.0)
	assert.Equal(t, Mass[float64]{Kg: 5.5}, a.Add(b))
	assert.Equal(t, Mass[float64]{Kg: 4.5}, a.Sub(b))
	assert.Equal(t, Mass[float64]{Kg: -5}, a.Neg())
	assert.Equal(t, Mass[float64]{Kg: 10}, a.MulScalar(2))
	assert.Equal(t, Mass[float64]{Kg: 2.5}, a.DivScalar(2))
	assert.Equal(t, 10.0, a.Ratio(b))
}

func TestNames(t *testing.T) {
	c := CapacitanceFromFarads(4.0)
	assert.Equal(t, "farads", c.UnitName())
	assert.Equal(t, "F", c.UnitSymbol())
	assert.Equal(t, "4 F", c.String())
	assert.Equal(t, "4 F", fmt.Sprint(c))
	assert.Equal(t, "henries", Inductance[float64]{}.UnitName())
	assert.Equal(t, "lumens", LuminousFlux[float64]{}.UnitName())
	assert.Equal(t, 2.0, LuminousFluxFromKilolumens(0.002).ToLumens())
	assert.Equal(t, "inverse farads", Elastance[float64]{}.UnitName())
	assert.Equal(t, "1/F", Elastance[float64]{}.UnitSymbol())
	assert.Equal(t, "Ω", Resistance[int]{}.UnitSymbol())
}
