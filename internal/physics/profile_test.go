package physics_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gasdyn/internal/physics"
)

var _ = Describe("FaceVelocity", func() {
	It("pins the first face and averages neighbours", func() {
		w, err := physics.FaceVelocity(physics.Profile{1.0, 3.0, 5.0})
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(physics.Profile{0.0, 2.0, 4.0}))
	})

	It("keeps the input length", func() {
		v := physics.Profile{-1, 1, 4, 2, 0}
		w, err := physics.FaceVelocity(v)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(HaveLen(len(v)))
		Expect(w).To(Equal(physics.Profile{0, 0, 2.5, 3, 1}))
	})

	It("does not modify its input", func() {
		v := physics.Profile{2, 4}
		_, err := physics.FaceVelocity(v)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(physics.Profile{2, 4}))
	})

	DescribeTable("rejects short profiles",
		func(v physics.Profile) {
			w, err := physics.FaceVelocity(v)
			Expect(err).To(MatchError(physics.ErrInsufficientSamples))
			Expect(w).To(BeNil())
		},
		Entry("single sample", physics.Profile{1.0}),
		Entry("empty", physics.Profile{}),
		Entry("nil", physics.Profile(nil)),
	)
})

var _ = Describe("element-wise forms", func() {
	rho := physics.Profile{1e-24, 2e-24, 4e-24}
	p := physics.Profile{1e-12, 3e-12, 5e-12}
	v := physics.Profile{1e5, -2e5, 3e5}

	It("maps each scalar formula", func() {
		m := physics.MassProfile(rho, 10)
		Expect(m).To(HaveLen(3))

		cs, err := physics.SoundSpeedProfile(p, rho)
		Expect(err).NotTo(HaveOccurred())
		ke, err := physics.KineticEnergyProfile(m, v)
		Expect(err).NotTo(HaveOccurred())
		ei, err := physics.InternalEnergyProfile(m, p, rho)
		Expect(err).NotTo(HaveOccurred())
		mom, err := physics.MomentumProfile(m, v)
		Expect(err).NotTo(HaveOccurred())
		temp, err := physics.TemperatureProfile(p, rho, 0.6)
		Expect(err).NotTo(HaveOccurred())
		s, err := physics.EntropyProfile(temp, rho, 0.6)
		Expect(err).NotTo(HaveOccurred())

		for i := range rho {
			Expect(m[i]).To(Equal(physics.Mass(rho[i], 10)))
			Expect(cs[i]).To(Equal(physics.SoundSpeed(p[i], rho[i])))
			Expect(ke[i]).To(Equal(physics.KineticEnergy(m[i], v[i])))
			Expect(ei[i]).To(Equal(physics.InternalEnergy(m[i], p[i], rho[i])))
			Expect(mom[i]).To(Equal(physics.Momentum(m[i], v[i])))
			Expect(temp[i]).To(Equal(physics.Temperature(p[i], rho[i], 0.6)))
			Expect(s[i]).To(Equal(physics.Entropy(temp[i], rho[i], 0.6)))
		}
	})

	It("inverts temperature element-wise", func() {
		temp, err := physics.TemperatureProfile(p, rho, 0.6)
		Expect(err).NotTo(HaveOccurred())
		back, err := physics.PressureProfile(temp, rho, 0.6)
		Expect(err).NotTo(HaveOccurred())
		for i := range p {
			Expect(back[i]).To(BeNumerically("~", p[i], p[i]*1e-12))
		}
	})

	It("computes crossing times against face velocities", func() {
		cs := physics.Profile{1, 1, 1}
		w, err := physics.FaceVelocity(physics.Profile{1, 3, 5})
		Expect(err).NotTo(HaveOccurred())

		ct, err := physics.CrossingTimes(cs, physics.Profile{1, 3, 5}, w, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(ct).To(Equal(physics.Profile{1, 1, 1}))
	})

	It("reports mismatched lengths", func() {
		_, err := physics.SoundSpeedProfile(p, rho[:2])
		Expect(errors.Is(err, physics.ErrLengthMismatch)).To(BeTrue())

		_, err = physics.CrossingTimes(p, v, v[:1], 1)
		Expect(err).To(MatchError(physics.ErrLengthMismatch))

		_, err = physics.MomentumProfile(rho, v[:2])
		Expect(err).To(MatchError(physics.ErrLengthMismatch))
	})
})

var _ = Describe("CourantTimestep", func() {
	It("scales the shortest crossing time", func() {
		dt, err := physics.CourantTimestep(physics.Profile{4, 2, 8}, 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(dt).To(Equal(1.0))
	})

	It("rejects an empty profile", func() {
		_, err := physics.CourantTimestep(nil, 0.5)
		Expect(err).To(MatchError(physics.ErrInsufficientSamples))
	})
})

var _ = Describe("Profile", func() {
	It("clones independently", func() {
		p := physics.Profile{1, 2}
		c := p.Clone()
		c[0] = 9
		Expect(p[0]).To(Equal(1.0))
	})

	It("detects non-finite samples", func() {
		Expect(physics.Profile{1, 2}.IsFinite()).To(BeTrue())
		Expect(physics.Profile{1, math.NaN()}.IsFinite()).To(BeFalse())
		Expect(physics.Profile{math.Inf(-1)}.IsFinite()).To(BeFalse())
	})
})
