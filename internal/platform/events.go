package platform

import (
	"sync"
)

// Имена событий платформы
const (
	EventThemeChanged = "themeChanged"
)

// Event событие платформы
type Event struct {
	Name string
	Data any
}

// EventHandler обработчик события
type EventHandler func(Event)

// Subscription идентифицирует зарегистрированный обработчик для OffEvent
type Subscription struct {
	name string
	id   uint64
}

// eventBus шина событий между платформой и приложением
type eventBus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string]map[uint64]EventHandler
	wg       sync.WaitGroup
}

func newEventBus() *eventBus {
	return &eventBus{
		handlers: make(map[string]map[uint64]EventHandler),
	}
}

func (eb *eventBus) on(name string, handler EventHandler) Subscription {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.nextID++
	if eb.handlers[name] == nil {
		eb.handlers[name] = make(map[uint64]EventHandler)
	}
	eb.handlers[name][eb.nextID] = handler
	return Subscription{name: name, id: eb.nextID}
}

func (eb *eventBus) off(sub Subscription) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	delete(eb.handlers[sub.name], sub.id)
	if len(eb.handlers[sub.name]) == 0 {
		delete(eb.handlers, sub.name)
	}
}

// emit запускает обработчики в отдельных горутинах
func (eb *eventBus) emit(event Event) {
	eb.mu.RLock()
	handlers := make([]EventHandler, 0, len(eb.handlers[event.Name]))
	for _, h := range eb.handlers[event.Name] {
		handlers = append(handlers, h)
	}
	eb.mu.RUnlock()

	for _, handler := range handlers {
		eb.wg.Add(1)
		go func(h EventHandler) {
			defer eb.wg.Done()
			h(event)
		}(handler)
	}
}

// wait дожидается завершения запущенных обработчиков
func (eb *eventBus) wait() {
	eb.wg.Wait()
}
