// Package slug генерирует короткие URL-безопасные идентификаторы ссылок.
package slug

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"regexp"
	"sync"
)

// entropyBytes количество случайных байт на один слаг. 5 байт в base64 без паддинга дают 7 символов.
const entropyBytes = 5

// Length длина сгенерированного слага.
const Length = 7

var urlSafeRe = regexp.MustCompile(`^[0-9A-Za-z_-]*$`)

// GeneratorOptions настройки генератора.
type GeneratorOptions struct {
	// Entropy источник случайных байт. По умолчанию crypto/rand.
	Entropy io.Reader
}

// WithEntropy подменяет источник случайных байт, например для детерминированных тестов.
func WithEntropy(r io.Reader) func(*GeneratorOptions) {
	return func(o *GeneratorOptions) {
		o.Entropy = r
	}
}

// Generator выдает случайные слаги. Безопасен для конкурентного использования.
type Generator struct {
	mu      sync.Mutex
	entropy io.Reader
}

func New(opts ...func(*GeneratorOptions)) *Generator {
	options := GeneratorOptions{
		Entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Generator{entropy: options.Entropy}
}

// Generate возвращает новый слаг из алфавита [A-Za-z0-9_-] длиной Length.
func (g *Generator) Generate() (string, error) {
	var buf [entropyBytes]byte

	g.mu.Lock()
	_, err := io.ReadFull(g.entropy, buf[:])
	g.mu.Unlock()

	if err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf[:]), nil
}

// IsURLSafe сообщает, состоит ли s только из букв, цифр, `-` и `_`.
// Пустая строка считается безопасной, проверка на пустоту выполняется отдельно.
func IsURLSafe(s string) bool {
	return urlSafeRe.MatchString(s)
}
