// Package testutil provides shared testing utilities: testify-based mocks
// for the v1 API services (mock_services.go) and episode fixtures for the
// export and storage tests (fixtures.go).
package testutil
