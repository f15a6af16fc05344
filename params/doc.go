// Package params defines per-node parameter blocks for continuous-time
// processes over discrete state spaces.
//
// A parameter block couples a node's identity (label and ordered domain)
// with its Conditional Intensity Matrix (CIM) and the sufficient statistics
// the CIM is estimated from: transition counts M and residence times T.
//
// The Node interface is the capability surface the process and sampling
// layers program against; Discrete is the only implementation today
// (discrete states, continuous time). New node kinds (e.g. continuous-state)
// can be added by implementing Node without touching the process contract.
//
// Errors:
//
//	ErrParametersNotInitialized - the CIM has not been set yet.
//	ErrInvalidCIM               - a CIM failed shape, diagonal or row-sum checks.
package params
