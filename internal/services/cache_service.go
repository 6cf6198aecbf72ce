package services

import (
	"sync"
	"time"
)

// Cache é a interface para serviços de cache com TTL
type Cache interface {
	Get(key string) interface{}
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Clear()
	Size() int
}

// entradaCache representa uma entrada no cache
type entradaCache struct {
	valor     interface{}
	expiracao time.Time
}

// TTLCache implementa um cache em memória com expiração por entrada.
// O mutex cobre apenas operações em memória, nunca I/O: quem popula o cache
// lê da rede fora do lock e só então chama Set.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]entradaCache
}

// NewTTLCache cria um cache vazio
func NewTTLCache() *TTLCache {
	return &TTLCache{
		entries: make(map[string]entradaCache),
	}
}

// Get recupera um valor do cache; retorna nil se ausente ou expirado
func (c *TTLCache) Get(key string) interface{} {
	c.mu.RLock()
	entrada, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil
	}
	if time.Now().After(entrada.expiracao) {
		c.Delete(key)
		return nil
	}
	return entrada.valor
}

// Set adiciona ou atualiza um valor no cache
func (c *TTLCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entradaCache{
		valor:     value,
		expiracao: time.Now().Add(ttl),
	}
}

// Delete remove um item do cache
func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Clear limpa todo o cache
func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entradaCache)
}

// Size retorna o número de itens no cache, inclusive expirados ainda não
// coletados
func (c *TTLCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// CleanupExpired remove todas as entradas expiradas e retorna quantas saíram
func (c *TTLCache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	agora := time.Now()
	removidas := 0
	for key, entrada := range c.entries {
		if agora.After(entrada.expiracao) {
			delete(c.entries, key)
			removidas++
		}
	}
	return removidas
}

// StartCleanupRoutine inicia uma rotina periódica de limpeza
func (c *TTLCache) StartCleanupRoutine(interval time.Duration) *time.Ticker {
	ticker := time.NewTicker(interval)

	go func() {
		for range ticker.C {
			c.CleanupExpired()
		}
	}()

	return ticker
}
