package presenter

import "sync"

// TamanoPaginaPorDefecto filas que se materializan en cada carga del scroll
// infinito.
const TamanoPaginaPorDefecto = 50

// Paginador materializa la "ventana visible": el prefijo creciente de la
// colección filtrada que la tabla tiene renderizado. LoadMore amplía la
// ventana una página; cualquier cambio en la colección filtrada debe
// invalidar el paginador llamando a Reset (una ventana obsoleta nunca debe
// sobrevivir a un cambio de filtro).
type Paginador[T any] struct {
	mu         sync.Mutex
	tamPagina  int
	pagina     int
	filtrados  []T
	visibles   []T
	cargandoMas bool
}

// NewPaginador crea un paginador vacío. Un tamaño de página no positivo toma
// el valor por defecto.
func NewPaginador[T any](tamPagina int) *Paginador[T] {
	if tamPagina <= 0 {
		tamPagina = TamanoPaginaPorDefecto
	}
	return &Paginador[T]{tamPagina: tamPagina}
}

// Reset fija la colección filtrada y reinicia la ventana visible a la primera
// página. Es idempotente: dos Reset con la misma colección dejan la misma
// ventana.
func (p *Paginador[T]) Reset(filtrados []T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filtrados = append([]T(nil), filtrados...)
	fin := min(p.tamPagina, len(p.filtrados))
	p.visibles = append([]T(nil), p.filtrados[:fin]...)
	p.pagina = 1
	p.cargandoMas = false
}

// LoadMore añade la siguiente página a la ventana visible. Una llamada que no
// aporta elementos nuevos es un no-op (la página no avanza): eso señala que
// no hay más datos. Devuelve true si la ventana creció. El flag en curso
// evita cargas duplicadas por señales de visibilidad repetidas.
func (p *Paginador[T]) LoadMore() bool {
	p.mu.Lock()
	if p.cargandoMas {
		p.mu.Unlock()
		return false
	}
	p.cargandoMas = true
	defer func() {
		p.mu.Lock()
		p.cargandoMas = false
		p.mu.Unlock()
	}()

	inicio := p.pagina * p.tamPagina
	if inicio >= len(p.filtrados) {
		p.mu.Unlock()
		return false
	}
	fin := min(inicio+p.tamPagina, len(p.filtrados))
	p.visibles = append(p.visibles, p.filtrados[inicio:fin]...)
	p.pagina++
	p.mu.Unlock()
	return true
}

// SentinelVisible es la señal de intersección del elemento centinela: carga
// la siguiente página solo si la ventana aún no cubre toda la colección
// filtrada y no hay otra carga en curso.
func (p *Paginador[T]) SentinelVisible() bool {
	p.mu.Lock()
	pendiente := len(p.visibles) < len(p.filtrados) && !p.cargandoMas
	p.mu.Unlock()
	if !pendiente {
		return false
	}
	return p.LoadMore()
}

// Visibles devuelve una copia de la ventana visible actual.
func (p *Paginador[T]) Visibles() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.visibles...)
}

// Pagina devuelve el número de páginas materializadas.
func (p *Paginador[T]) Pagina() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pagina
}

// HayMas indica si quedan filas filtradas fuera de la ventana visible.
func (p *Paginador[T]) HayMas() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.visibles) < len(p.filtrados)
}
