// Package rlwe implements a public key encryption scheme of bits over the ring
// Z_Q[X]/(F), with F monic of degree P (by default X^P + 1), whose noise is drawn
// from a Knuth-Yao discrete Gaussian sampler.
//
// Key generation samples two noise polynomials r1, r2 and publishes
// (a, p1 = r1 - a*r2). A message m is encrypted as (c1, c2) = (a*e1 + e2,
// p1*e1 + e3 + m) and decrypted as c1*r2 + c2 = m + (e1*r1 + e2*r2 + e3).
package rlwe
