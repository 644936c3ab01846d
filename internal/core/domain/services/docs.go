// Package services contains stateless domain services that operate on the
// domain model without belonging to a single aggregate.
package services
