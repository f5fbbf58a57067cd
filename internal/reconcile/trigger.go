package reconcile

// Trigger identifies which control fired the current event. The string
// ids sent by the UI are resolved to this closed set once, at the HTTP
// boundary; everything after that switches on the variant.
type Trigger int

const (
	// TriggerNone covers both "no trigger present" and unrecognized ids;
	// either way the event is a no-op.
	TriggerNone Trigger = iota
	TriggerZoomIn
	TriggerZoomOut
	TriggerResetZoom
	TriggerSaveState
	TriggerLoadState
	TriggerSaveNote
	TriggerSearch
	TriggerNodeTap
)

var triggerIDs = map[string]Trigger{
	"zoom-in":     TriggerZoomIn,
	"zoom-out":    TriggerZoomOut,
	"reset-zoom":  TriggerResetZoom,
	"save-state":  TriggerSaveState,
	"load-state":  TriggerLoadState,
	"save-note":   TriggerSaveNote,
	"node-search": TriggerSearch,
	"node-tap":    TriggerNodeTap,
}

// ParseTrigger resolves a control id to its Trigger. Unknown ids resolve
// to TriggerNone.
func ParseTrigger(id string) Trigger {
	if t, ok := triggerIDs[id]; ok {
		return t
	}
	return TriggerNone
}

// String returns the control id for the trigger.
func (t Trigger) String() string {
	for id, v := range triggerIDs {
		if v == t {
			return id
		}
	}
	return "none"
}
