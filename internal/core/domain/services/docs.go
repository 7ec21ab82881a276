// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderAssembler: A domain service for validating order lines against the
//     restaurant catalog and pricing them
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
