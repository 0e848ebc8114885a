package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-sortable unique identifiers, used for
// trace IDs and freshly issued API keys.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
