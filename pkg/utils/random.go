package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"hash/fnv"
	"math/rand"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей).
// Используется для идентификаторов сессий.
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := crand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// DeterministicID создает ID из переданного генератора.
// Один и тот же сид дает одну и ту же последовательность ID,
// поэтому комнаты и монстры воспроизводимы от зерна подземелья.
func DeterministicID(rng *rand.Rand, prefix string) string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = byte(rng.Intn(256))
	}
	return prefix + hex.EncodeToString(b)
}

// NewSeed генерирует случайное зерно из crypto/rand.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("failed to generate seed: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// StringToSeed превращает строку (имя игрока) в стабильное зерно.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
