// Package memory implementa los puertos de persistencia sobre mapas en
// proceso. Es el backend de desarrollo y de los tests de handlers; expone
// exactamente el mismo contrato que el backend PostgreSQL, incluida la
// reversión transaccional vía TxRunner.
package memory

import (
	"sync"

	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

type itemRecord struct {
	entity.Item
	seq int64 // orden de inserción, desempate del orden por fecha
}

// Store estado compartido (ítems y categorías) protegido por RWMutex.
// Se inyecta a los repositorios y al TxRunner; nunca es estado global.
type Store struct {
	mu         sync.RWMutex
	items      map[string]itemRecord
	categories map[string]entity.Category
	nextSeq    int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		items:      make(map[string]itemRecord),
		categories: make(map[string]entity.Category),
	}
}

// snapshot copia el estado completo (para revertir una transacción fallida).
func (s *Store) snapshot() (map[string]itemRecord, map[string]entity.Category, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make(map[string]itemRecord, len(s.items))
	for k, v := range s.items {
		items[k] = v
	}
	categories := make(map[string]entity.Category, len(s.categories))
	for k, v := range s.categories {
		categories[k] = v
	}
	return items, categories, s.nextSeq
}

// restore repone un snapshot previo.
func (s *Store) restore(items map[string]itemRecord, categories map[string]entity.Category, nextSeq int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.categories = categories
	s.nextSeq = nextSeq
}
