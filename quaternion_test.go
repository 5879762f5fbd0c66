package quaternions

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// randomQuaternion returns a quaternion with components drawn uniformly
// from [-1,1). It is generally not unit norm.
func randomQuaternion(rng *rand.Rand) Quaternion {
	return Quaternion{
		2*rng.Float64() - 1,
		2*rng.Float64() - 1,
		2*rng.Float64() - 1,
		2*rng.Float64() - 1,
	}
}

// randomUnitQuaternion returns the quaternion of a random ZYX Euler
// orientation, which is unit norm up to floating point error.
func randomUnitQuaternion(rng *rand.Rand) Quaternion {
	return EulerToQuaternion(
		math.Pi*(2*rng.Float64()-1),
		math.Pi/2*(2*rng.Float64()-1),
		math.Pi*(2*rng.Float64()-1),
	)
}

func TestConjugate(t *testing.T) {
	t.Parallel()

	t.Run("negates only the vector part", func(t *testing.T) {
		t.Parallel()
		q := Quaternion{0.5, -0.5, 0.5, -0.5}
		assert.Equal(t, Quaternion{0.5, 0.5, -0.5, 0.5}, q.Conjugate())
	})

	t.Run("is an exact involution", func(t *testing.T) {
		t.Parallel()
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 100; i++ {
			q := randomQuaternion(rng)
			assert.Equal(t, q, q.Conjugate().Conjugate())
		}
	})
}

func TestMultiplyIdentity(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		q := randomQuaternion(rng)
		assert.Equal(t, q, Multiply(q, Identity()))
		assert.Equal(t, q, Multiply(Identity(), q))
	}
}

// TestMultiplyBasis pins the Hamilton convention: i*j = k and j*i = -k.
// An operand swap in Multiply flips these signs.
func TestMultiplyBasis(t *testing.T) {
	t.Parallel()

	var (
		i = Quaternion{0, 1, 0, 0}
		j = Quaternion{0, 0, 1, 0}
		k = Quaternion{0, 0, 0, 1}
	)

	assert.Equal(t, k, Multiply(i, j))
	assert.Equal(t, Quaternion{0, 0, 0, -1}, Multiply(j, i))
	assert.Equal(t, Quaternion{-1, 0, 0, 0}, Multiply(i, i))
}

// TestMultiplyMatchesGonum cross-checks Multiply against gonum's
// independent Hamilton product implementation.
func TestMultiplyMatchesGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 100; i++ {
		q := randomQuaternion(rng)
		p := randomQuaternion(rng)

		want := quat.Mul(q.Number(), p.Number())
		got := Multiply(q, p).Number()

		assert.True(t, scalar.EqualWithinAbs(got.Real, want.Real, 1e-12))
		assert.True(t, scalar.EqualWithinAbs(got.Imag, want.Imag, 1e-12))
		assert.True(t, scalar.EqualWithinAbs(got.Jmag, want.Jmag, 1e-12))
		assert.True(t, scalar.EqualWithinAbs(got.Kmag, want.Kmag, 1e-12))
	}
}

func TestMultiplyNormMultiplicative(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 100; i++ {
		q := randomQuaternion(rng)
		p := randomQuaternion(rng)
		assert.InDelta(t, q.Norm()*p.Norm(), Multiply(q, p).Norm(), 1e-12)
	}
}
