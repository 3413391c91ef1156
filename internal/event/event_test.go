package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	damage := &recorder{}
	all := &recorder{}
	d.Subscribe(PlayerDamaged, damage)
	d.Subscribe(PlayerDamaged, all, PlayerHealed)

	d.Dispatch(Event{Type: PlayerDamaged, Data: DamageData{Amount: 20}})
	d.Dispatch(Event{Type: PlayerHealed, Data: HealData{Amount: 20}})
	d.Dispatch(Event{Type: GameOver})

	assert.Len(t, damage.events, 1)
	assert.Len(t, all.events, 2)
	assert.Equal(t, 20, damage.events[0].Data.(DamageData).Amount)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(LevelCompleted, r)
	d.Unsubscribe(LevelCompleted, r)

	d.Dispatch(Event{Type: LevelCompleted})
	assert.Empty(t, r.events)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	d.Subscribe(GameOver, ListenerFunc(func(e Event) { got = append(got, e.Type) }))

	d.Dispatch(Event{Type: GameOver, Data: GameOverData{Score: 3}})
	assert.Equal(t, []EventType{GameOver}, got)
}
