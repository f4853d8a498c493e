/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry.go
Description: Suite registry for the Akaylee TestKit. Holds the ordered
collection of suites a run executes. Suites are added explicitly by the host
program before the run begins; registration order is the documented
sequential execution order.
*/

package registry

import "github.com/kleascm/akaylee-testkit/pkg/suite"

// Registry is the ordered collection of suites for one run. It is populated
// before a run begins and read-only during the run. Registration is
// append-only; there is no removal API.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	suites []*suite.Suite
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add appends a suite to the registry. The suite collection grows by
// amortized doubling, so registration stays O(1) per suite. Modifying a
// suite (registering hooks or tests) after adding it is allowed.
func (r *Registry) Add(s *suite.Suite) {
	r.suites = append(r.suites, s)
}

// Len returns the number of registered suites.
func (r *Registry) Len() int {
	return len(r.suites)
}

// Suite returns the i-th registered suite.
func (r *Registry) Suite(i int) *suite.Suite {
	return r.suites[i]
}
