// Package mocks provides a tracer that records nothing, for unit tests.
package mocks

import (
	"context"
	"hoteldash/infras/otel"
)

type nopOtel struct{}

func (nopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

type nopScope struct{}

func (nopScope) End() {}
func (nopScope) TraceError(_ error) {}
func (nopScope) TraceIfError(_ error) {}
func (nopScope) AddEvent(_ string) {}
func (nopScope) SetAttribute(_ string, _ any) {}
func (nopScope) SetAttributes(_ map[string]any) {}

func NewOtel() otel.Otel {
	return nopOtel{}
}

func NewScope() otel.Scope {
	return nopScope{}
}
