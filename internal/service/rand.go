package service

import "math/rand"

// systemRand draws from the shared math/rand source, which is safe for
// concurrent use across requests.
type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.Intn(n) }
