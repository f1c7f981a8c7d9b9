package service

import "github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"

// Scorer defines the interface for assessment scoring strategies.
type Scorer interface {
	Score(input ScoringInput) valueobject.ScoringResult
}

var _ Scorer = (*ScoringEngine)(nil)
