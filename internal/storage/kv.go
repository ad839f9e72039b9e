// Package storage implementa o Persistence Gateway: duas coleções (modelos e
// inspeções) serializadas como arrays JSON em chaves fixas de um armazenamento
// chave-valor local.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrKeyNotFound indica que a chave ainda não foi gravada
var ErrKeyNotFound = errors.New("chave não encontrada")

// KV é o armazenamento chave-valor local usado pelo gateway
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// MemoryKV é um KV em memória, usado em testes e no modo efêmero
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV cria um KV em memória vazio
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get retorna uma cópia do valor gravado
func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set grava uma cópia do valor
func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}
