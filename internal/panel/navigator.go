package panel

import "sync"

// Navigator — состояние панелей одного view. Одновременно видна максимум
// одна панель: Open поверх открытой заменяет её, стека нет.
type Navigator struct {
	mu      sync.Mutex
	active  Panel
	step    Step
	payload any // данные для панелей карточек (детали позиции и т.п.)
}

func NewNavigator() *Navigator {
	return &Navigator{active: None, step: StepForm}
}

// Open показывает панель, сбрасывая шаг на начальный. payload хранится до
// закрытия или следующего Open.
func (n *Navigator) Open(p Panel, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = p
	n.step = StepForm
	n.payload = payload
}

// Advance двигает многошаговую панель на следующий шаг. На последнем шаге и
// на панелях без шагов — no-op.
func (n *Navigator) Advance() {
	n.mu.Lock()
	defer n.mu.Unlock()
	seq, ok := stepSequences[n.active]
	if !ok {
		return
	}
	for i, s := range seq {
		if s == n.step && i+1 < len(seq) {
			n.step = seq[i+1]
			return
		}
	}
}

// Close прячет активную панель и сбрасывает шаг и payload.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = None
	n.step = StepForm
	n.payload = nil
}

func (n *Navigator) State() (Panel, Step, any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active, n.step, n.payload
}
