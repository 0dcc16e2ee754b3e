// Package resilience provides a consecutive-failure circuit breaker.
//
// The distance worker client wraps its RPCs in a breaker so that a dead
// worker is answered from memory instead of a fresh transport error on
// every request. No call is ever retried; an open breaker fails fast.
package resilience
