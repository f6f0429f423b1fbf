// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-echo-arena/internal/defs"
)

// PRNGService — обертка над генератором случайных чисел, чтобы вся игра
// использовала один предсказуемый источник с сидом.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance returns true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// ChooseWeighted picks an enemy kind from the entries unlocked at depth.
// Entries with MinDepth above depth are skipped. Returns "" when nothing
// is eligible.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry, depth int) string {
	totalWeight := 0
	for _, entry := range entries {
		if entry.MinDepth <= depth && entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return ""
	}

	r := s.Intn(totalWeight)
	upto := 0
	var last string
	for _, entry := range entries {
		if entry.MinDepth > depth || entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.EnemyID
		}
		upto += entry.Weight
		last = entry.EnemyID
	}
	return last
}
