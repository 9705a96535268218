// Package duo holds the shared surface of the maybe and outcome containers:
// the Container capability interface, the identity function, a generic Pair,
// and the value-equality helper both containers use for their Equals methods.
package duo
