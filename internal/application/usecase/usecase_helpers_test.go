package usecase_test

import (
	"context"
	"sync/atomic"

	"github.com/bnema/netguard/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type countingRecorder struct {
	n atomic.Int64
}

func (r *countingRecorder) RecordBlocked() {
	r.n.Add(1)
}
