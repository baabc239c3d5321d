// Package mocks holds gomock doubles for the repository ports.
//
// Regenerate after an interface change with:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=account_repository_mock.go -mock_names=Repository=MockAccountRepository jobboard/internal/domain/account Repository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_repository_mock.go -mock_names=Repository=MockJobRepository jobboard/internal/domain/job Repository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=application_repository_mock.go -mock_names=Repository=MockApplicationRepository jobboard/internal/domain/application Repository
