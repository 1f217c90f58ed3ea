package rest

import (
	"sync"
	"time"
)

// coleccionCache caché de corta vida de una colección completa. Es un objeto
// propio del gateway (inyectado, nunca estado de paquete) y solo el gateway
// escribe en él. La secuencia comprobar-vigencia-y-actuar queda encerrada en
// Vigente/Reemplazar bajo el mismo mutex.
type coleccionCache[T any] struct {
	mu     sync.Mutex
	datos  []T
	cuando time.Time
	ttl    time.Duration
}

func nuevaCache[T any](ttl time.Duration) *coleccionCache[T] {
	return &coleccionCache[T]{ttl: ttl}
}

// Vigente devuelve la colección cacheada si existe y no ha expirado.
func (c *coleccionCache[T]) Vigente() ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.datos) == 0 || time.Since(c.cuando) >= c.ttl {
		return nil, false
	}
	return append([]T(nil), c.datos...), true
}

// Reemplazar sustituye el contenido y renueva la marca de tiempo.
func (c *coleccionCache[T]) Reemplazar(datos []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.datos = append([]T(nil), datos...)
	c.cuando = time.Now()
}

// Invalidar vacía la caché; la próxima lectura irá a red.
func (c *coleccionCache[T]) Invalidar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.datos = nil
	c.cuando = time.Time{}
}

// Parchear aplica una transformación al contenido cacheado sin renovar la
// marca de tiempo. No hace nada si la caché está vacía.
func (c *coleccionCache[T]) Parchear(fn func([]T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.datos) == 0 {
		return
	}
	c.datos = fn(c.datos)
}

// Buscar devuelve el primer elemento cacheado que cumple el predicado.
func (c *coleccionCache[T]) Buscar(pred func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.datos {
		if pred(d) {
			return d, true
		}
	}
	var cero T
	return cero, false
}
