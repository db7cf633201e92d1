package utils

import (
	"hash/fnv"
	"math/rand"

	"github.com/google/uuid"
)

// NewToken выдает токен новой сессии
func NewToken() string {
	return uuid.NewString()
}

// StringToSeed превращает строку (токен игрока) в стабильный сид
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}

// RandRange - случайное число в [lo, hi] включительно
func RandRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return rng.Intn(hi-lo+1) + lo
}

// WeightedChoice выбирает элемент пропорционально весу.
// Элементы с весом <= 0 не выбираются никогда.
func WeightedChoice[T any](rng *rand.Rand, options []T, weights []int) (T, bool) {
	var zero T
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 || len(options) != len(weights) {
		return zero, false
	}

	roll := rng.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return options[i], true
		}
		roll -= w
	}
	return zero, false
}
