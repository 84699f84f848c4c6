package contact

import "fmt"

// Outcome records how the most recent submit attempt ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRejected
	OutcomeAccepted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeAccepted:
		return "accepted"
	default:
		return "none"
	}
}

// State is the read-only view handed to subscribers and renderers.
type State struct {
	Values      Values
	Errors      Errors
	Snapshot    Snapshot
	Submitted   bool
	Submissions int
	LastSubmit  Outcome
}

// Result describes a single submit attempt.
type Result struct {
	Accepted bool
	Errors   Errors
	Snapshot Snapshot
}

// Listener observes state after every mutating event.
type Listener func(State)

type subscription struct {
	id int
	fn Listener
}

// Controller owns the live field values, their validation errors and the
// last submitted snapshot. It is driven by discrete events from a single
// goroutine; callers that share it must serialise access themselves.
type Controller struct {
	values      Values
	errors      Errors
	snapshot    Snapshot
	submitted   bool
	submissions int
	lastSubmit  Outcome

	subscribers []subscription
	nextID      int

	logger    Logger
	sanitizer Sanitizer
}

// New constructs an empty controller.
func New(options ...Option) *Controller {
	c := &Controller{logger: nopLogger{}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.logger == nil {
		c.logger = nopLogger{}
	}
	return c
}

// SetField stores value for f and revalidates that field only. Other fields
// keep their current error state.
func (c *Controller) SetField(f Field, value string) error {
	if !f.Valid() {
		c.logger.Printf("contact: ignoring change for %s", f)
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
	c.values = c.values.With(f, value)
	msg, _ := Validate(f, value)
	c.errors.set(f, msg)
	c.notify()
	return nil
}

// SetFieldByName resolves name with ParseField and delegates to SetField.
func (c *Controller) SetFieldByName(name, value string) error {
	f, err := ParseField(name)
	if err != nil {
		c.logger.Printf("contact: ignoring change for %q", name)
		return err
	}
	return c.SetField(f, value)
}

// Submit revalidates every field. Values pass through the sanitizer first and
// the rules run on the sanitized text, so a snapshot always satisfies the
// rules that accepted it. When any rule fails the attempt is rejected and the
// errors reflect every failure; the snapshot is left alone. Otherwise the
// sanitized values become the new snapshot and the live form is cleared.
func (c *Controller) Submit() Result {
	candidate := c.sanitize(c.values)
	errs := ValidateAll(candidate)
	c.errors = errs
	c.submissions++

	if !errs.Empty() {
		c.lastSubmit = OutcomeRejected
		c.logger.Printf("contact: submit rejected with %d error(s)", errs.Len())
		c.notify()
		return Result{Errors: errs, Snapshot: c.snapshot}
	}

	c.snapshot = Snapshot{values: candidate}
	c.submitted = true
	c.lastSubmit = OutcomeAccepted
	c.values = Values{}
	c.errors = Errors{}
	c.logger.Printf("contact: submit accepted")
	c.notify()
	return Result{Accepted: true, Snapshot: c.snapshot}
}

func (c *Controller) sanitize(v Values) Values {
	if c.sanitizer == nil {
		return v
	}
	for _, f := range Fields() {
		v = v.With(f, c.sanitizer.Sanitize(v.Get(f)))
	}
	return v
}

// Reset discards live values, errors and the snapshot, returning the
// controller to its freshly constructed state. Subscribers are kept.
func (c *Controller) Reset() {
	c.values = Values{}
	c.errors = Errors{}
	c.snapshot = Snapshot{}
	c.submitted = false
	c.submissions = 0
	c.lastSubmit = OutcomeNone
	c.notify()
}

// Subscribe registers fn to receive the state after every mutation. The
// returned function removes the subscription.
func (c *Controller) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.subscribers = append(c.subscribers, subscription{id: id, fn: fn})
	return func() {
		for idx, sub := range c.subscribers {
			if sub.id == id {
				c.subscribers = append(c.subscribers[:idx], c.subscribers[idx+1:]...)
				return
			}
		}
	}
}

// State returns the current view.
func (c *Controller) State() State {
	return State{
		Values:      c.values,
		Errors:      c.errors,
		Snapshot:    c.snapshot,
		Submitted:   c.submitted,
		Submissions: c.submissions,
		LastSubmit:  c.lastSubmit,
	}
}

// Values returns the live field values.
func (c *Controller) Values() Values {
	return c.values
}

// Errors returns the current validation errors.
func (c *Controller) Errors() Errors {
	return c.errors
}

// Snapshot returns the last accepted submission. The boolean is false until
// the first successful submit.
func (c *Controller) Snapshot() (Snapshot, bool) {
	return c.snapshot, c.submitted
}

func (c *Controller) notify() {
	if len(c.subscribers) == 0 {
		return
	}
	state := c.State()
	subs := append([]subscription(nil), c.subscribers...)
	for _, sub := range subs {
		sub.fn(state)
	}
}
