/*
Package zzring is a library for arithmetic on polynomials with arbitrary precision integer
coefficients, together with a Knuth-Yao discrete Gaussian sampler and a Ring-LWE public key
encryption scheme built on top of both.

The zzx package provides the polynomial engine (multiplication strategies, division, GCD,
truncated inverses and modular reduction), the gaussian package the sampler, and the rlwe
package the encryption scheme.
*/
package zzring
