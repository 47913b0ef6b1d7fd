package util

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	shareHashAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	shareHashLength   = 16
)

// GenerateShareHash создаёт непрозрачный hash для публичной ссылки.
func GenerateShareHash() (string, error) {
	h, err := gonanoid.Generate(shareHashAlphabet, shareHashLength)
	if err != nil {
		return "", fmt.Errorf("generate share hash: %w", err)
	}
	return h, nil
}

// NormalizeTags обрезает пробелы, убирает пустые и повторяющиеся названия.
// Порядок первых вхождений сохраняется.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
