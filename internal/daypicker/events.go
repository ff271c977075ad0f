package daypicker

// Event is an input the picker reacts to. Raw key codes and mouse
// coordinates are decoded into one of these at the UI boundary.
type Event interface {
	isEvent()
}

type (
	// ArrowLeft moves focus to the previous day.
	ArrowLeft struct{}
	// ArrowRight moves focus to the next day.
	ArrowRight struct{}
	// Activate is Enter or Space on the focused day.
	Activate struct{}
	// Click is a pointer activation of a rendered day.
	Click struct{ Day Date }
	// FocusGained reports that a day received UI focus.
	FocusGained struct{ Day Date }
	// FocusLost reports that the focused day lost UI focus.
	FocusLost struct{}
	// PreviousMonth pages the window back one month.
	PreviousMonth struct{}
	// NextMonth pages the window forward one month.
	NextMonth struct{}
	// ShowMonth jumps to an arbitrary month within bounds.
	ShowMonth struct{ Month Month }
	// Reset replaces the initial month. Bounds are not consulted.
	Reset struct{ Month Month }
	// CaptionClick is an activation of a month title.
	CaptionClick struct{ Month Month }
)

func (ArrowLeft) isEvent()     {}
func (ArrowRight) isEvent()    {}
func (Activate) isEvent()      {}
func (Click) isEvent()         {}
func (FocusGained) isEvent()   {}
func (FocusLost) isEvent()     {}
func (PreviousMonth) isEvent() {}
func (NextMonth) isEvent()     {}
func (ShowMonth) isEvent()     {}
func (Reset) isEvent()         {}
func (CaptionClick) isEvent()  {}

// Notification is emitted after a transition has been committed.
type Notification interface {
	isNotification()
}

type (
	// MonthChanged carries the new first visible month.
	MonthChanged struct{ Month Month }
	// FocusChanged carries the newly focused day; a zero Day means focus
	// was lost.
	FocusChanged struct{ Day Date }
	// DayActivated forwards an activation with the day's active modifiers
	// as they were when the day was activated.
	DayActivated struct {
		Day       Date
		Modifiers []string
	}
	// CaptionActivated forwards a month title activation.
	CaptionActivated struct{ Month Month }
)

func (MonthChanged) isNotification()     {}
func (FocusChanged) isNotification()     {}
func (DayActivated) isNotification()     {}
func (CaptionActivated) isNotification() {}
