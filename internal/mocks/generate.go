// Package mocks provides mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the core ports. To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=account_repository_mock.go github.com/audioscribe/audioscribe/internal/core AccountRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/audioscribe/audioscribe/internal/core JobRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=queue_mock.go github.com/audioscribe/audioscribe/internal/core Publisher,Source,ProbeStore

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=worker_mock.go github.com/audioscribe/audioscribe/internal/core Transcriber,PayloadStore
