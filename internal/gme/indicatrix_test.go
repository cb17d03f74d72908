package gme

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomech/erode/internal/algebra"
)

func newIndicatrix(t *testing.T, tilt TiltModel, eta *big.Rat) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Tilt = tilt
	cfg.Eta = eta
	cfg.DeriveIndicatrix = true
	en, err := New(cfg)
	require.NoError(t, err)
	return en
}

func TestIndicatrixDefaultSine(t *testing.T) {
	en := newIndicatrix(t, TiltSine, big.NewRat(3, 2))
	q := &en.Eqns

	require.True(t, q.FgtxCossqrdbeta.Ok(), q.FgtxCossqrdbeta.Reason())
	require.True(t, q.FgtxTanbeta.Ok(), q.FgtxTanbeta.Reason())
	require.True(t, q.IdtxRdotx.Ok(), q.IdtxRdotx.Reason())
	require.True(t, q.IdtxRdotz.Ok(), q.IdtxRdotz.Reason())
	require.NotNil(t, q.IndicatrixChoice)

	// The selected root is a cosine squared: real and in [0, 1] at the
	// probe it was accepted on.
	env := map[string]float64{"eta": 1.5, "varphi": 1, "pz": -0.01}
	c := algebra.EvalF(q.FgtxCossqrdbeta.Eqn.RHS, env)
	assert.GreaterOrEqual(t, c, 0.0)
	assert.LessOrEqual(t, c, 1.0)
}

func TestIndicatrixQuarticSine(t *testing.T) {
	// eta = 1/4 with the sine tilt closes through a quartic.
	en := newIndicatrix(t, TiltSine, big.NewRat(1, 4))
	q := &en.Eqns
	assert.True(t, q.FgtxCossqrdbeta.Ok(), q.FgtxCossqrdbeta.Reason())
	assert.True(t, q.FgtxTanbeta.Ok(), q.FgtxTanbeta.Reason())
}

func TestIndicatrixUnsolvableTangent(t *testing.T) {
	// The tangent tilt pushes eta = 3/2 and eta = 1/4 past quartic
	// degree, where no closed-form root exists.
	for _, eta := range []*big.Rat{big.NewRat(3, 2), big.NewRat(1, 4)} {
		en := newIndicatrix(t, TiltTangent, eta)
		q := &en.Eqns

		assert.False(t, q.FgtxCossqrdbeta.Ok(), "eta = %v", eta)
		assert.NotEmpty(t, q.FgtxCossqrdbeta.Reason())
		found := false
		for _, n := range en.Notices() {
			if n.Stage == "indicatrix" {
				found = true
			}
		}
		assert.True(t, found, "expected an indicatrix notice for eta = %v", eta)
	}
}

func TestIndicatrixSkippedWhenDisabled(t *testing.T) {
	en := newDefault(t)
	assert.False(t, en.Eqns.FgtxTanbeta.Ok())
	assert.Nil(t, en.Eqns.IndicatrixChoice)
}
