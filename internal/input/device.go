// internal/input/device.go
package input

// Device — опрашиваемое устройство ввода. Опрос синхронный, раз в тик.
type Device interface {
	// Held — действие удерживается в этом тике.
	Held(a Action) bool
	// JustPressed — действие нажато именно в этом тике.
	JustPressed(a Action) bool
	// Cursor возвращает позицию курсора в пикселях окна (начало — левый верхний угол, Y вниз).
	// ok == false, если курсор вне окна.
	Cursor() (x, y float32, ok bool)
	// Viewport возвращает размер окна в пикселях.
	Viewport() (w, h int)
}

// Snapshot — состояние устройства, заданное значениями.
// Используется в headless-режиме и в тестах.
type Snapshot struct {
	Down      map[Action]bool
	Pressed   map[Action]bool
	CursorX   float32
	CursorY   float32
	HasCursor bool
	Width     int
	Height    int
}

// NewSnapshot создаёт пустой снимок с размером окна w×h.
func NewSnapshot(w, h int) *Snapshot {
	return &Snapshot{
		Down:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
		Width:   w,
		Height:  h,
	}
}

func (s *Snapshot) Held(a Action) bool        { return s.Down[a] || s.Pressed[a] }
func (s *Snapshot) JustPressed(a Action) bool { return s.Pressed[a] }
func (s *Snapshot) Viewport() (int, int)      { return s.Width, s.Height }

func (s *Snapshot) Cursor() (float32, float32, bool) {
	return s.CursorX, s.CursorY, s.HasCursor
}

// Hold отмечает действия как удерживаемые.
func (s *Snapshot) Hold(actions ...Action) *Snapshot {
	for _, a := range actions {
		s.Down[a] = true
	}
	return s
}

// Press отмечает действия как нажатые в этом тике.
func (s *Snapshot) Press(actions ...Action) *Snapshot {
	for _, a := range actions {
		s.Pressed[a] = true
	}
	return s
}

// Point ставит курсор.
func (s *Snapshot) Point(x, y float32) *Snapshot {
	s.CursorX, s.CursorY, s.HasCursor = x, y, true
	return s
}

// Next переводит снимок в следующий тик: нажатия становятся удержанием.
func (s *Snapshot) Next() {
	for a := range s.Pressed {
		s.Down[a] = true
		delete(s.Pressed, a)
	}
}

// Release отпускает действия.
func (s *Snapshot) Release(actions ...Action) {
	for _, a := range actions {
		delete(s.Down, a)
		delete(s.Pressed, a)
	}
}
