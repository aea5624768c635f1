package panel

import "sync"

// Registry — явная замена глобальных open-функций исходного кабинета:
// навигатор привязывается к view на время его жизни (Register при монтировании,
// Deregister при размонтировании). Open по размонтированному view — no-op,
// обработчик мёртвого view никогда не вызывается. Порядок при быстрых
// последовательных вызовах не гарантируется, побеждает последний.
type Registry struct {
	mu    sync.Mutex
	views map[string]*Navigator
}

func NewRegistry() *Registry {
	return &Registry{views: make(map[string]*Navigator)}
}

// Register монтирует view. Повторный Register того же view сохраняет
// текущее состояние панелей (перезагрузка страницы его не теряет).
func (r *Registry) Register(viewID string) *Navigator {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.views[viewID]; ok {
		return n
	}
	n := NewNavigator()
	r.views[viewID] = n
	return n
}

func (r *Registry) Deregister(viewID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.views, viewID)
}

// Navigator возвращает навигатор смонтированного view.
func (r *Registry) Navigator(viewID string) (*Navigator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.views[viewID]
	return n, ok
}

// Open — точка входа для «чужих» частей UI: открыть панель у view, если он
// смонтирован. false — view не смонтирован, вызов проигнорирован.
func (r *Registry) Open(viewID string, p Panel, payload any) bool {
	n, ok := r.Navigator(viewID)
	if !ok {
		return false
	}
	n.Open(p, payload)
	return true
}
