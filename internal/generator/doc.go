// Package generator builds character pools, samples passwords from them and
// scores the result.
//
// Sampling uses a general-purpose pseudo-random generator (math/rand/v2), not
// crypto/rand. Passwords produced here are not suitable where an attacker can
// observe or predict the generator state.
package generator
