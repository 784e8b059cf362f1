package service

import (
	"context"
	"fmt"
)

// Generator is the text-generation capability the analysis service
// depends on. Implementations wrap one backend; swapping backends means
// swapping implementations, not touching the service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ServiceError wraps any failure of the AI backend: missing key, quota
// exhaustion, transport errors, empty responses. The analysis service
// treats all of them the same way: fall back, never propagate.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	if e.Err == nil {
		return "ai service: " + e.Op
	}
	return fmt.Sprintf("ai service: %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
