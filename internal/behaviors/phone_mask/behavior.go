package phone_mask

import (
	"strings"

	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/page"
)

const (
	behaviorID      = "phone-mask"
	behaviorVersion = "1.0.0"

	// TypeAttr/TelType identify telephone inputs on the page.
	TypeAttr = "type"
	TelType  = "tel"

	// maxDigits hard-caps the raw digit string. Digits past the tenth are
	// dropped rather than retained invisibly, so the stored value and the
	// rendered mask always agree.
	maxDigits = 10
)

// PhoneMaskBehavior rewrites telephone fields into the "(NNN) NNN-NNNN"
// shape on every keystroke.
type PhoneMaskBehavior struct {
	fields map[string]*page.Element
}

// Register installs the behavior factory.
func Register(reg *behavior.Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(behaviorID, func() (behavior.Behavior, error) {
		return New(), nil
	})
}

// New returns an unattached phone formatter.
func New() *PhoneMaskBehavior {
	return &PhoneMaskBehavior{fields: map[string]*page.Element{}}
}

// Info describes the behavior.
func (b *PhoneMaskBehavior) Info() behavior.Info {
	return behavior.Info{
		ID:          behaviorID,
		Name:        "Phone Formatter",
		Description: "Masks telephone inputs as (NNN) NNN-NNNN while typing.",
		Version:     behaviorVersion,
	}
}

// Attach collects every telephone-typed input on the page.
func (b *PhoneMaskBehavior) Attach(ctx *behavior.Context) (bool, error) {
	for _, el := range ctx.Doc.WithAttr(TypeAttr) {
		if kind, _ := el.Attr(TypeAttr); kind == TelType && el.Kind == page.KindInput {
			b.fields[el.ID] = el
		}
	}
	return len(b.fields) > 0, nil
}

// HandleEvent reformats the field value on each input event.
func (b *PhoneMaskBehavior) HandleEvent(_ *behavior.Context, ev behavior.Event) error {
	input, ok := ev.(behavior.Input)
	if !ok {
		return nil
	}
	el, ok := b.fields[input.FieldID]
	if !ok {
		return nil
	}
	el.Text = Format(input.Value)
	return nil
}

// Format strips non-digits from the value, caps it at ten digits, and
// renders the progressive mask: up to 2 digits unadorned, 3-6 as
// "(NNN) rest", 7+ as "(NNN) NNN-rest". The hyphen only appears once a
// seventh digit exists, so a six-digit value never ends in "-".
func Format(value string) string {
	digits := extractDigits(value)
	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
}

func extractDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == maxDigits {
				break
			}
		}
	}
	return b.String()
}
