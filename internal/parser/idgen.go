package parser

import "github.com/google/uuid"

// IDGenerator produces opaque unique IDs for parsed entities. IDs must never
// collide within a single parse call; tests inject deterministic generators.
type IDGenerator interface {
	NextID() string
}

type uuidIDGenerator struct{}

// NewIDGenerator returns the production IDGenerator, backed by random UUIDs.
func NewIDGenerator() IDGenerator {
	return uuidIDGenerator{}
}

func (uuidIDGenerator) NextID() string {
	return uuid.NewString()
}
