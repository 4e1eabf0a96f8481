package rlwe

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/zzring/gaussian"
	"github.com/tuneinsight/zzring/zzx"
)

const (
	// DefaultSigma is the default standard deviation of the error distribution.
	DefaultSigma = 3.19
	// DefaultTailCut is the default number of standard deviations at which the error distribution is truncated.
	DefaultTailCut = 13.2
	// DefaultPrecision is the default number of bits of the Knuth-Yao probability matrix.
	DefaultPrecision = 64
)

// ParametersLiteral is a literal representation of the encryption scheme parameters.
// It has public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The NewParametersFromLiteral function is used to
// generate the actual checked parameters from the literal representation.
//
// Users must set the ring degree P and the coefficient modulus Q.
// Optionally, users may specify the coefficients of the defining polynomial F
// (constant term first, monic of degree P), and the error distribution
// (Sigma, TailCut, Center, Precision). If left unset, F = X^P + 1 and the
// default values of the package are substituted at parameter creation.
type ParametersLiteral struct {
	P         int
	Q         uint64
	F         []int64 `json:",omitempty"`
	Sigma     float64
	TailCut   float64
	Center    float64
	Precision int
}

// Parameters represents a set of checked parameters of the encryption scheme.
// Its fields are private and immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	p        int
	f        []int64
	modulus  *zzx.Modulus
	gaussian gaussian.Parameters
	table    *gaussian.Table
}

// NewParametersFromLiteral instantiates a set of Parameters from a ParametersLiteral specification.
// It returns the empty parameters Parameters{} and a non-nil error if the specified parameters are invalid.
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters, err error) {

	if paramDef.P < 1 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: P=%d must be positive", paramDef.P)
	}

	if paramDef.Q < 5 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Q=%d must be at least 5", paramDef.Q)
	}

	if paramDef.F == nil {
		paramDef.F = make([]int64, paramDef.P+1)
		paramDef.F[0] = 1
		paramDef.F[paramDef.P] = 1
	}

	if paramDef.Sigma == 0 {
		paramDef.Sigma = DefaultSigma
	}

	if paramDef.TailCut == 0 {
		paramDef.TailCut = DefaultTailCut
	}

	if paramDef.Precision == 0 {
		paramDef.Precision = DefaultPrecision
	}

	f := zzx.NewPolyFromCoeffs(paramDef.F)

	if f.Degree() != paramDef.P {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: F has degree %d but P=%d", f.Degree(), paramDef.P)
	}

	params.p = paramDef.P
	params.f = append([]int64{}, paramDef.F[:paramDef.P+1]...)

	if params.modulus, err = zzx.NewModulus(f, new(big.Int).SetUint64(paramDef.Q)); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	params.gaussian = gaussian.Parameters{
		Precision: paramDef.Precision,
		TailCut:   paramDef.TailCut,
		Sigma:     paramDef.Sigma,
		Center:    paramDef.Center,
	}

	if params.table, err = gaussian.NewTable(params.gaussian); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	return
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {

	F := make([]int64, len(p.f))
	copy(F, p.f)

	return ParametersLiteral{
		P:         p.p,
		Q:         p.modulus.Q.Uint64(),
		F:         F,
		Sigma:     p.gaussian.Sigma,
		TailCut:   p.gaussian.TailCut,
		Center:    p.gaussian.Center,
		Precision: p.gaussian.Precision,
	}
}

// P returns the degree of the defining polynomial F.
func (p Parameters) P() int {
	return p.p
}

// Q returns a copy of the coefficient modulus.
func (p Parameters) Q() *big.Int {
	return new(big.Int).Set(p.modulus.Q)
}

// F returns a copy of the defining polynomial.
func (p Parameters) F() *zzx.Poly {
	return p.modulus.F.CopyNew()
}

// Modulus returns the ring Z_Q[X]/(F).
func (p Parameters) Modulus() *zzx.Modulus {
	return p.modulus
}

// Sigma returns the standard deviation of the error distribution.
func (p Parameters) Sigma() float64 {
	return p.gaussian.Sigma
}

// NoiseBound returns the truncation bound of the error distribution.
func (p Parameters) NoiseBound() int64 {
	return p.gaussian.Bound()
}

// GaussianParameters returns the parameters of the error distribution.
func (p Parameters) GaussianParameters() gaussian.Parameters {
	return p.gaussian
}

// GaussianTable returns the Knuth-Yao table of the error distribution.
func (p Parameters) GaussianTable() *gaussian.Table {
	return p.table
}

// Equal checks two Parameter structs for equality.
func (p Parameters) Equal(other Parameters) bool {
	if p.modulus == nil || other.modulus == nil {
		return p.modulus == other.modulus
	}
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalBinary returns a []byte representation of the parameter set.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a slice of bytes on the target Parameters.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	return p.UnmarshalJSON(data)
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
