package app

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// View is the screen the application is showing.
type View string

const (
	ViewLoading    View = "loading"
	ViewAuth       View = "auth"
	ViewOnboarding View = "onboarding"
	ViewGenerating View = "generating"
	ViewDashboard  View = "dashboard"
	ViewWorkout    View = "workout"
	ViewSettings   View = "settings"
	ViewLibrary    View = "library"
	ViewHistory    View = "history"
)

// Event drives a view transition.
type Event string

const (
	EventAuthRequired     Event = "AUTH_REQUIRED"
	EventNewUser          Event = "NEW_USER"
	EventPlansLoaded      Event = "PLANS_LOADED"
	EventNoPlans          Event = "NO_PLANS"
	EventLoadFailed       Event = "LOAD_FAILED"
	EventLoad             Event = "LOAD"
	EventGenerate         Event = "GENERATE"
	EventGenerated        Event = "GENERATED"
	EventGenerationFailed Event = "GENERATION_FAILED"
	EventStartWorkout     Event = "START_WORKOUT"
	EventReset            Event = "RESET"
	EventOpenHistory      Event = "OPEN_HISTORY"
	EventOpenLibrary      Event = "OPEN_LIBRARY"
	EventOpenSettings     Event = "OPEN_SETTINGS"
	EventSignOut          Event = "SIGN_OUT"
	EventFinish           Event = "FINISH"
	EventGoDashboard      Event = "GO_DASHBOARD"
	EventBackDashboard    Event = "BACK_DASHBOARD"
	EventBackWorkout      Event = "BACK_WORKOUT"
)

type viewContext struct{}

// viewMachine is the application flow. An event with no transition from the
// current view leaves it unchanged and is reported as ErrInvalidTransition.
type viewMachine struct {
	interpreter *statekit.Interpreter[viewContext]
}

func sid(v View) statekit.StateID { return statekit.StateID(v) }

func newViewMachine() (*viewMachine, error) {
	builder := statekit.NewMachine[viewContext]("fitflow-views").
		WithInitial(sid(ViewLoading)).
		WithContext(viewContext{})

	builder.State(sid(ViewLoading)).
		On(statekit.EventType(EventAuthRequired)).Target(sid(ViewAuth)).
		On(statekit.EventType(EventNewUser)).Target(sid(ViewOnboarding)).
		On(statekit.EventType(EventPlansLoaded)).Target(sid(ViewWorkout)).
		On(statekit.EventType(EventNoPlans)).Target(sid(ViewDashboard)).
		On(statekit.EventType(EventLoadFailed)).Target(sid(ViewAuth)).
		Done()

	builder.State(sid(ViewAuth)).
		On(statekit.EventType(EventLoad)).Target(sid(ViewLoading)).
		Done()

	builder.State(sid(ViewOnboarding)).
		On(statekit.EventType(EventGenerate)).Target(sid(ViewGenerating)).
		On(statekit.EventType(EventLoad)).Target(sid(ViewLoading)).
		On(statekit.EventType(EventSignOut)).Target(sid(ViewAuth)).
		Done()

	builder.State(sid(ViewGenerating)).
		On(statekit.EventType(EventGenerated)).Target(sid(ViewWorkout)).
		On(statekit.EventType(EventGenerationFailed)).Target(sid(ViewDashboard)).
		On(statekit.EventType(EventLoad)).Target(sid(ViewLoading)).
		On(statekit.EventType(EventSignOut)).Target(sid(ViewAuth)).
		Done()

	builder.State(sid(ViewDashboard)).
		On(statekit.EventType(EventStartWorkout)).Target(sid(ViewWorkout)).
		On(statekit.EventType(EventReset)).Target(sid(ViewOnboarding)).
		On(statekit.EventType(EventOpenHistory)).Target(sid(ViewHistory)).
		On(statekit.EventType(EventOpenLibrary)).Target(sid(ViewLibrary)).
		On(statekit.EventType(EventOpenSettings)).Target(sid(ViewSettings)).
		On(statekit.EventType(EventSignOut)).Target(sid(ViewAuth)).
		On(statekit.EventType(EventLoad)).Target(sid(ViewLoading)).
		Done()

	builder.State(sid(ViewWorkout)).
		On(statekit.EventType(EventReset)).Target(sid(ViewOnboarding)).
		On(statekit.EventType(EventOpenSettings)).Target(sid(ViewSettings)).
		On(statekit.EventType(EventOpenHistory)).Target(sid(ViewHistory)).
		On(statekit.EventType(EventOpenLibrary)).Target(sid(ViewLibrary)).
		On(statekit.EventType(EventFinish)).Target(sid(ViewHistory)).
		On(statekit.EventType(EventGoDashboard)).Target(sid(ViewDashboard)).
		On(statekit.EventType(EventSignOut)).Target(sid(ViewAuth)).
		On(statekit.EventType(EventLoad)).Target(sid(ViewLoading)).
		Done()

	builder.State(sid(ViewSettings)).
		On(statekit.EventType(EventBackDashboard)).Target(sid(ViewDashboard)).
		On(statekit.EventType(EventBackWorkout)).Target(sid(ViewWorkout)).
		On(statekit.EventType(EventGenerate)).Target(sid(ViewGenerating)).
		On(statekit.EventType(EventSignOut)).Target(sid(ViewAuth)).
		On(statekit.EventType(EventLoad)).Target(sid(ViewLoading)).
		Done()

	builder.State(sid(ViewLibrary)).
		On(statekit.EventType(EventBackDashboard)).Target(sid(ViewDashboard)).
		On(statekit.EventType(EventBackWorkout)).Target(sid(ViewWorkout)).
		On(statekit.EventType(EventSignOut)).Target(sid(ViewAuth)).
		On(statekit.EventType(EventLoad)).Target(sid(ViewLoading)).
		Done()

	builder.State(sid(ViewHistory)).
		On(statekit.EventType(EventBackDashboard)).Target(sid(ViewDashboard)).
		On(statekit.EventType(EventSignOut)).Target(sid(ViewAuth)).
		On(statekit.EventType(EventLoad)).Target(sid(ViewLoading)).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building view machine: %w", err)
	}
	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()
	return &viewMachine{interpreter: interpreter}, nil
}

// Current returns the active view.
func (m *viewMachine) Current() View {
	return View(m.interpreter.State().Value)
}

// Send applies ev. No view transitions to itself, so an unchanged view means
// the event was rejected.
func (m *viewMachine) Send(ev Event) error {
	before := m.Current()
	m.interpreter.Send(statekit.Event{Type: statekit.EventType(ev)})
	if m.Current() == before {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ev, before)
	}
	return nil
}
