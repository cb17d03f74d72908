package gme_test

import (
	"math"
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/gme"
)

var _ = Describe("Derivation", func() {
	Describe("with the default configuration", func() {
		var en *gme.Engine

		BeforeEach(func() {
			var err error
			en, err = gme.New(gme.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
		})

		It("runs every stage without notices", func() {
			Expect(en.Notices()).To(BeEmpty())
		})

		It("produces four Hamilton equations", func() {
			Expect(en.Eqns.Hamiltons).To(HaveLen(4))
		})

		It("conserves the vertical slowness component", func() {
			Expect(en.Eqns.PdotzPxpz.RHS.String()).To(Equal("0"))
		})

		It("indexes equations by derivation name", func() {
			names := en.Names()
			Expect(names).To(ContainElements("hamiltonian", "gstar", "varphi_rx", "pz_initial"))
			Expect(names).NotTo(ContainElement("tanbeta_poly"))
		})
	})

	Describe("in raw mode", func() {
		It("keeps the erosion exponent symbolic", func() {
			cfg := gme.DefaultConfig()
			cfg.Raw = true
			en, err := gme.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(algebra.FreeSymbols(en.Eqns.XiVarphiBeta.RHS)).To(HaveKey("eta"))
			Expect(algebra.FreeSymbols(en.Eqns.H.RHS)).To(HaveKey("eta"))
		})
	})

	Describe("with the ramp-flat flow model", func() {
		It("smooths the ramp onset at the boundary", func() {
			cfg := gme.DefaultConfig()
			cfg.Flow = gme.FlowRampFlat
			cfg.Mu = big.NewRat(1, 2)
			en, err := gme.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			env := map[string]float64{
				"x_1": 1, "varphi_0": 1, "chi": 1, "x_sigma": 0.05,
			}
			at := func(rx float64) float64 {
				env["rx"] = rx
				return algebra.EvalF(en.Eqns.VarphiRx.RHS, env)
			}
			// Near the boundary only the logistic tail remains.
			Expect(at(0.99)).To(BeNumerically("~", 1.0, 5e-2))
			Expect(at(0.2)).To(BeNumerically(">", at(0.6)))
		})
	})

	Describe("tilt-angle relations", func() {
		It("maps the extremal tilt to tan(beta) = sqrt(eta)", func() {
			en, err := gme.New(gme.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(en.Eqns.BetaAtAlphaExtremumValue.Ok()).To(BeTrue())
			Expect(en.Eqns.BetaAtAlphaExtremumValue.Val).To(
				BeNumerically("~", math.Atan(math.Sqrt(1.5)), 1e-9))
		})

		It("records the branch chosen for the inversion", func() {
			en, err := gme.New(gme.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(en.Eqns.TanbetaChoice).NotTo(BeNil())
			Expect(en.Eqns.TanbetaChoice.Probe).NotTo(BeEmpty())
		})
	})
})
