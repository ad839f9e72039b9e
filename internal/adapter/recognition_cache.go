package adapter

import (
	"container/list"
	"context"
	"log"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
	"github.com/zeebo/xxh3"
)

// recognitionEntry representa uma foto já reconhecida
type recognitionEntry struct {
	key        xxh3.Uint128
	info       models.VehicleInfo
	expiration time.Time
}

// RecognitionCache implementa um cache LRU thread-safe de resultados de
// reconhecimento, indexado pelo hash xxh3 dos bytes da foto
type RecognitionCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu      sync.Mutex
	entries map[xxh3.Uint128]*list.Element
	lruList *list.List
}

// NewRecognitionCache cria um cache com a capacidade e validade especificadas
func NewRecognitionCache(capacity int, ttl time.Duration) *RecognitionCache {
	return &RecognitionCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[xxh3.Uint128]*list.Element),
		lruList:  list.New(),
	}
}

// Get recupera o resultado de uma foto, se ainda válido
func (c *RecognitionCache) Get(image []byte) (models.VehicleInfo, bool) {
	key := xxh3.Hash128(image)

	c.mu.Lock()
	defer c.mu.Unlock()

	element, found := c.entries[key]
	if !found {
		return models.VehicleInfo{}, false
	}

	entry := element.Value.(*recognitionEntry)
	if c.now().After(entry.expiration) {
		c.removeElement(element)
		return models.VehicleInfo{}, false
	}

	c.lruList.MoveToBack(element)
	return entry.info.Clone(), true
}

// Set guarda o resultado de uma foto, removendo o menos usado se cheio
func (c *RecognitionCache) Set(image []byte, info models.VehicleInfo) {
	key := xxh3.Hash128(image)
	expiration := c.now().Add(c.ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.entries[key]; found {
		c.lruList.MoveToBack(element)
		entry := element.Value.(*recognitionEntry)
		entry.info = info.Clone()
		entry.expiration = expiration
		return
	}

	if c.lruList.Len() >= c.capacity {
		if oldest := c.lruList.Front(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	c.entries[key] = c.lruList.PushBack(&recognitionEntry{
		key:        key,
		info:       info.Clone(),
		expiration: expiration,
	})
}

// Size retorna o número de fotos em cache
func (c *RecognitionCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lruList.Len()
}

// removeElement remove um elemento da lista e do mapa (deve ser chamado com lock)
func (c *RecognitionCache) removeElement(element *list.Element) {
	c.lruList.Remove(element)
	delete(c.entries, element.Value.(*recognitionEntry).key)
}

// CachedRecognizer evita reenviar ao provedor a mesma foto (ex.: operador
// tocando em "reconhecer" duas vezes). Resultados vazios não são guardados,
// pois podem vir de uma falha passageira.
type CachedRecognizer struct {
	next  VehicleRecognizer
	cache *RecognitionCache
}

// NewCachedRecognizer envolve o reconhecedor com cache. Com capacidade zero,
// devolve o próprio reconhecedor.
func NewCachedRecognizer(next VehicleRecognizer, capacity int, ttl time.Duration) VehicleRecognizer {
	if capacity <= 0 || ttl <= 0 {
		return next
	}
	if _, disabled := next.(DisabledRecognizer); disabled {
		return next
	}
	return &CachedRecognizer{next: next, cache: NewRecognitionCache(capacity, ttl)}
}

// Recognize consulta o cache antes de chamar o provedor
func (r *CachedRecognizer) Recognize(ctx context.Context, image []byte, mimeType string) models.VehicleInfo {
	if info, ok := r.cache.Get(image); ok {
		log.Printf("[Recognition] Foto já reconhecida, usando cache (placa=%q)", info.Placa)
		return info
	}

	info := r.next.Recognize(ctx, image, mimeType)
	if !info.IsEmpty() {
		r.cache.Set(image, info)
	}
	return info
}
