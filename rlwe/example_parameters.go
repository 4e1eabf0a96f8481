package rlwe

var (
	// ExampleParametersRLWE is a Ring-LWE parameter set of degree 1024.
	ExampleParametersRLWE = ParametersLiteral{
		P:     1024,
		Q:     11289,
		Sigma: 3.19,
	}

	// ExampleParametersNTRUPrime uses the degree and modulus of an NTRU Prime parameter set.
	ExampleParametersNTRUPrime = ParametersLiteral{
		P:     761,
		Q:     4591,
		Sigma: 2.0,
	}

	// ExampleParametersToy is a small parameter set for tests and examples. It is not secure.
	ExampleParametersToy = ParametersLiteral{
		P:     14,
		Q:     179424673,
		Sigma: 2.0,
	}
)
