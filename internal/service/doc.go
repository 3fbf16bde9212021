// Package service contains the catalog's application use cases. Each use case
// is a single stateless request/response operation that composes the
// repository ports (internal/store) with the domain services
// (internal/domain/catalog) to answer one presentation query.
//
// Key components:
//
// 1. Use cases:
//   - ListCategoriesUseCase: ordered categories annotated with pattern counts
//   - FilterPatternsUseCase: patterns narrowed by tag, then by free text
//   - GetPatternDetailUseCase: a single pattern by slug
//   - GetCategoryWithPatternsUseCase: a category and its patterns by slug
//
// 2. Dependency management:
//   - Use cases receive their dependencies through constructor injection
//   - NewUseCases is the hand-wired composition root used by the binaries
//
// 3. Error handling:
//   - Absent entities are reported as nil results, never as errors
//   - Repository failures are wrapped in *UseCaseError
//
// The service package depends on domain entities and store interfaces, but
// never on a specific content adapter.
package service
