package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gasdyn/internal/physics"
)

var _ = Describe("MeanMolecularWeight", func() {
	It("is positive and finite on [0, 1)", func() {
		for z := 0.0; z < 1; z += 0.01 {
			mu := physics.MeanMolecularWeight(z)
			Expect(mu).To(BeNumerically(">", 0), "z=%v", z)
			Expect(math.IsInf(mu, 0) || math.IsNaN(mu)).To(BeFalse(), "z=%v", z)
		}
	})

	It("rises as metals displace hydrogen", func() {
		prev := physics.MeanMolecularWeight(0)
		for z := 0.005; z <= 0.1; z += 0.005 {
			mu := physics.MeanMolecularWeight(z)
			Expect(mu).To(BeNumerically(">", prev), "z=%v", z)
			prev = mu
		}
	})

	It("matches the solar value", func() {
		Expect(physics.MeanMolecularWeight(0.02)).To(BeNumerically("~", 0.5943536404160475, 1e-15))
	})
})

var _ = Describe("parcel quantities", func() {
	It("computes mass bilinearly", func() {
		d, v := 1.3e-24, 2.9e55
		Expect(physics.Mass(2*d, v)).To(Equal(2 * physics.Mass(d, v)))
		Expect(physics.Mass(d, 2*v)).To(Equal(2 * physics.Mass(d, v)))
	})

	It("has no kinetic energy at rest", func() {
		for _, m := range []float64{0, 1, 1e33, -5} {
			Expect(physics.KineticEnergy(m, 0)).To(BeZero())
		}
	})

	It("computes kinetic energy and momentum", func() {
		Expect(physics.KineticEnergy(2, 3)).To(Equal(9.0))
		Expect(physics.Momentum(2, -3)).To(Equal(-6.0))
	})

	It("computes internal energy with gamma 5/3", func() {
		Expect(physics.InternalEnergy(2, 3, 1)).To(BeNumerically("~", 9.0, 1e-12))
		Expect(physics.SpecificInternalEnergy(3, 1)).To(BeNumerically("~", 4.5, 1e-12))
	})
})

var _ = Describe("SoundSpeed", func() {
	p, rho := 1.3757332300224836e-10, 1e-20

	It("matches the reference state", func() {
		Expect(physics.SoundSpeed(p, rho)).To(BeNumerically("~", 151422.87530964863, 1e-6))
	})

	It("scales as sqrt(p)", func() {
		Expect(physics.SoundSpeed(4*p, rho) / physics.SoundSpeed(p, rho)).To(BeNumerically("~", 2, 1e-12))
	})

	It("scales as rho^-1/2", func() {
		Expect(physics.SoundSpeed(p, 4*rho) / physics.SoundSpeed(p, rho)).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("propagates domain errors", func() {
		Expect(math.IsInf(physics.SoundSpeed(p, 0), 1)).To(BeTrue())
		Expect(math.IsNaN(physics.SoundSpeed(-p, rho))).To(BeTrue())
	})
})

var _ = Describe("thermodynamic state", func() {
	const (
		t   = 100.0
		rho = 1e-20
		mu  = 0.6
	)

	It("round-trips temperature through pressure", func() {
		p := physics.Pressure(t, rho, mu)
		got := physics.Temperature(p, rho, mu)
		Expect(math.Abs(got-t) / t).To(BeNumerically("<", 1e-9))
	})

	It("is consistent with the sound speed", func() {
		p := physics.Pressure(t, rho, mu)
		c := physics.SoundSpeed(p, rho)
		// c^2 = gamma k T / (mu m_p)
		back := c * c / (5.0 / 3.0) * mu * 1.672622e-24 / 1.380649e-16
		Expect(math.Abs(back-t) / t).To(BeNumerically("<", 1e-9))
	})

	It("evaluates the entropy", func() {
		Expect(physics.Entropy(t, rho, mu)).To(BeNumerically("~", 46.128229382713954, 1e-9))
	})

	It("increases entropy with temperature at fixed density", func() {
		Expect(physics.Entropy(2*t, rho, mu)).To(BeNumerically(">", physics.Entropy(t, rho, mu)))
	})

	It("lets entropy diverge at zero temperature", func() {
		Expect(math.IsInf(physics.Entropy(0, rho, mu), -1)).To(BeTrue())
	})
})

var _ = Describe("CrossingTime", func() {
	It("divides the cell width by the signal speed", func() {
		Expect(physics.CrossingTime(3, 5, 4, 8)).To(Equal(2.0))
		Expect(physics.CrossingTime(3, 4, 5, 8)).To(Equal(2.0))
	})

	It("halves with the cell width", func() {
		full := physics.CrossingTime(1.5e5, 2e6, 1e6, 3e18)
		half := physics.CrossingTime(1.5e5, 2e6, 1e6, 1.5e18)
		Expect(half).To(BeNumerically("~", full/2, full*1e-15))
	})
})
