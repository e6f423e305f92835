package keypad_test

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/zephyrtronium/keypad"
)

// recorder is a Display that remembers everything it is asked to render.
type recorder struct {
	shown  []string
	last   []string
	alerts []error
}

func (r *recorder) Show(expr string)     { r.shown = append(r.shown, expr) }
func (r *recorder) ShowLast(expr string) { r.last = append(r.last, expr) }
func (r *recorder) Alert(err error)      { r.alerts = append(r.alerts, err) }

func (r *recorder) current() string {
	if len(r.shown) == 0 {
		return ""
	}
	return r.shown[len(r.shown)-1]
}

// fixed is an Evaluator with canned answers.
type fixed map[string]string

func (f fixed) Evaluate(expr string) (string, error) {
	r, ok := f[expr]
	if !ok {
		return "", errors.New("no answer for " + expr)
	}
	return r, nil
}

// keys builds an expression by pressing each key in order.
func keys(t *testing.T, b *keypad.Builder, s string) {
	t.Helper()
	if err := b.Keys(s); err != nil {
		t.Fatalf("pressing %q: %v", s, err)
	}
}

func TestNew(t *testing.T) {
	var disp recorder
	b := keypad.New(keypad.WithDisplay(&disp))
	if b.Text() != "0" {
		t.Errorf("new builder has text %q", b.Text())
	}
	if b.HasOperator() {
		t.Error("new builder has an operator")
	}
	if b.State() != keypad.Zero {
		t.Errorf("new builder is in state %v", b.State())
	}
	if disp.current() != "0" {
		t.Errorf("new builder rendered %q", disp.shown)
	}
	if b.Last() != "" {
		t.Errorf("new builder has last computation %q", b.Last())
	}
}

func TestPress(t *testing.T) {
	cases := []struct {
		name   string
		digits []int
		want   string
	}{
		{"one", []int{5}, "5"},
		{"replace-zero", []int{5, 3}, "53"},
		{"zero-stays", []int{0}, "0"},
		{"zeros", []int{0, 0, 7}, "7"},
		{"inner-zero", []int{1, 0, 0}, "100"},
		{"all", []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, "9876543210"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := keypad.New()
			for _, d := range c.digits {
				if !b.Press(d) {
					t.Errorf("pressing %d was ignored", d)
				}
			}
			if b.Text() != c.want {
				t.Errorf("want %q, got %q", c.want, b.Text())
			}
		})
	}
}

func TestPressInvalid(t *testing.T) {
	var disp recorder
	b := keypad.New(keypad.WithDisplay(&disp))
	for _, d := range []int{-1, 10, 42} {
		if b.Press(d) {
			t.Errorf("pressing %d changed the expression to %q", d, b.Text())
		}
	}
	if len(disp.shown) != 1 {
		t.Errorf("ignored digits rendered %q", disp.shown)
	}
}

func TestOperator(t *testing.T) {
	cases := []struct {
		name string
		keys string
		op   rune
		want string
		ok   bool
	}{
		{"after-digit", "2", '+', "2+", true},
		{"after-zero", "", '*', "0*", true},
		{"repeat", "2+", '+', "2+", false},
		{"replace", "2+", '-', "2+", false},
		{"after-wrapper", "5n", '/', "(-5)/", true},
		{"chain", "1+2", '*', "1+2*", true},
		{"invalid", "2", '^', "2", false},
		{"alt-mul", "2", '×', "2", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := keypad.New()
			keys(t, b, c.keys)
			if got := b.Operator(c.op); got != c.ok {
				t.Errorf("Operator(%q) on %q reported %v", c.op, c.keys, got)
			}
			if b.Text() != c.want {
				t.Errorf("want %q, got %q", c.want, b.Text())
			}
			if c.ok && !b.HasOperator() {
				t.Error("operator flag not set")
			}
		})
	}
}

func TestOperatorRejectNoRender(t *testing.T) {
	var disp recorder
	b := keypad.New(keypad.WithDisplay(&disp))
	keys(t, b, "2+")
	n := len(disp.shown)
	if b.Operator('+') {
		t.Fatal("second operator accepted")
	}
	if len(disp.shown) != n {
		t.Errorf("rejected operator rendered %q", disp.shown[n:])
	}
}

func TestToggleSign(t *testing.T) {
	cases := []struct {
		name string
		keys string
		want string
		ok   bool
	}{
		{"zero", "", "0", false},
		{"digit", "5", "(-5)", true},
		{"number", "12", "(-12)", true},
		{"unwrap", "12n", "12", true},
		{"pending", "3+", "3+", false},
		{"pending-sub", "3-", "3-", false},
		{"local", "3+5", "3+(-5)", true},
		{"local-unwrap", "3+5n", "3+5", true},
		{"local-sub", "3-5", "3-(-5)", true},
		{"local-mul", "12*34", "12*(-34)", true},
		{"local-after-wrapper", "5n+6", "(-5)+(-6)", true},
		{"local-wrapped-lhs", "5n+6nn", "(-5)+(-6)", true},
		{"global-suffix", "5n3", "(-(-5)3)", true},
		{"global-unwrap-suffix", "5n3n", "(-5)3", true},
		{"point", "1.5", "(-1.5)", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := keypad.New()
			keys(t, b, c.keys)
			if got := b.ToggleSign(); got != c.ok {
				t.Errorf("ToggleSign on %q reported %v", c.keys, got)
			}
			if b.Text() != c.want {
				t.Errorf("want %q, got %q", c.want, b.Text())
			}
		})
	}
}

func TestToggleSignInvolution(t *testing.T) {
	for _, s := range []string{"12", "5", "(-5)3", "3+5", "3-5", "1+2*3", "7/(-2)", "3+(-5)", "0.5", "1+2.5"} {
		b := keypad.New()
		keys(t, b, strings.NewReplacer("(-2)", "2n", "(-5)", "5n").Replace(s))
		before := b.Text()
		if !b.ToggleSign() {
			t.Errorf("first toggle on %q ignored", before)
			continue
		}
		if !b.ToggleSign() {
			t.Errorf("second toggle on %q ignored", before)
			continue
		}
		if b.Text() != before {
			t.Errorf("double toggle of %q gave %q", before, b.Text())
		}
	}
}

func TestPoint(t *testing.T) {
	cases := []struct {
		name string
		keys string
		want string
		ok   bool
	}{
		{"zero", "", "0.", true},
		{"zero-digit", ".5", "0.5", false},
		{"digit", "5", "5.", true},
		{"twice", "5.", "5.", false},
		{"fraction", "5.2", "5.2", false},
		{"pending", "5+", "5+0.", true},
		{"second-operand", "5.2+3", "5.2+3.", true},
		{"wrapped", "5n", "(-5)", false},
		{"local-wrapped", "1+5n", "1+(-5)", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := keypad.New()
			keys(t, b, c.keys)
			if got := b.Point(); got != c.ok {
				t.Errorf("Point on %q reported %v", c.keys, got)
			}
			if b.Text() != c.want {
				t.Errorf("want %q, got %q", c.want, b.Text())
			}
		})
	}
}

func TestClear(t *testing.T) {
	ev := fixed{"78+9": "87"}
	for _, s := range []string{"", "5", "5+", "3+5n", "12n", "78+9="} {
		b := keypad.New(keypad.WithEvaluator(ev))
		keys(t, b, s)
		if !b.Clear() {
			t.Errorf("clear after %q reported no change", s)
		}
		if b.Text() != "0" || b.HasOperator() || b.State() != keypad.Zero {
			t.Errorf("clear after %q left %q with operator flag %v", s, b.Text(), b.HasOperator())
		}
		// Sign toggles act globally again.
		keys(t, b, "5")
		b.ToggleSign()
		if b.Text() != "(-5)" {
			t.Errorf("toggle after clearing %q gave %q", s, b.Text())
		}
	}
}

func TestState(t *testing.T) {
	cases := []struct {
		keys string
		want keypad.State
	}{
		{"", keypad.Zero},
		{"c", keypad.Zero},
		{"5", keypad.Operand},
		{"5n", keypad.Operand},
		{"5+", keypad.PendingOperator},
		{"5*", keypad.PendingOperator},
		{"5+3", keypad.Operand},
		{"0.", keypad.Operand},
	}
	for _, c := range cases {
		b := keypad.New()
		keys(t, b, c.keys)
		if got := b.State(); got != c.want {
			t.Errorf("%q is in state %v, want %v", b.Text(), got, c.want)
		}
	}
	if s := keypad.PendingOperator.String(); s != "PendingOperator" {
		t.Errorf("wrong state name %q", s)
	}
	if s := keypad.State(7).String(); s != "State(7)" {
		t.Errorf("wrong invalid state name %q", s)
	}
}

func TestCompute(t *testing.T) {
	var disp recorder
	b := keypad.New(keypad.WithDisplay(&disp), keypad.WithEvaluator(fixed{"78+9": "87"}))
	keys(t, b, "78")
	if b.Text() != "78" {
		t.Fatalf("want 78, got %q", b.Text())
	}
	keys(t, b, "+")
	if b.Text() != "78+" {
		t.Fatalf("want 78+, got %q", b.Text())
	}
	keys(t, b, "9")
	if b.Text() != "78+9" {
		t.Fatalf("want 78+9, got %q", b.Text())
	}
	if err := b.Compute(); err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if b.Text() != "87" {
		t.Errorf("want 87, got %q", b.Text())
	}
	if b.Last() != "78+9" {
		t.Errorf("want last computation 78+9, got %q", b.Last())
	}
	if disp.current() != "87" {
		t.Errorf("display shows %q", disp.current())
	}
	if len(disp.last) != 1 || disp.last[0] != "78+9" {
		t.Errorf("display last computation %q", disp.last)
	}
	if len(disp.alerts) != 0 {
		t.Errorf("successful compute alerted %v", disp.alerts)
	}
	// The result is the start of the next expression, and the operator flag
	// survives.
	if !b.HasOperator() {
		t.Error("compute reset the operator flag")
	}
	keys(t, b, "1")
	if b.Text() != "871" {
		t.Errorf("digit after result gave %q", b.Text())
	}
}

func TestComputeFailure(t *testing.T) {
	var disp recorder
	b := keypad.New(keypad.WithDisplay(&disp), keypad.WithEvaluator(fixed{}))
	keys(t, b, "5/")
	before := len(disp.shown)
	err := b.Compute()
	var ee *keypad.EvalError
	if !errors.As(err, &ee) {
		t.Fatalf("want EvalError, got %#v", err)
	}
	if ee.Expr != "5/" {
		t.Errorf("error for wrong expression %q", ee.Expr)
	}
	if b.Text() != "5/" {
		t.Errorf("failed compute changed text to %q", b.Text())
	}
	if b.Last() != "" {
		t.Errorf("failed compute set last computation %q", b.Last())
	}
	if len(disp.alerts) != 1 || disp.alerts[0] != err {
		t.Errorf("display alerts %v", disp.alerts)
	}
	if len(disp.shown) != before {
		t.Errorf("failed compute rendered %q", disp.shown[before:])
	}
}

func TestComputeEmptyResult(t *testing.T) {
	var disp recorder
	b := keypad.New(keypad.WithDisplay(&disp), keypad.WithEvaluator(fixed{"5": ""}))
	keys(t, b, "5")
	err := b.Compute()
	if !errors.Is(err, keypad.ErrNoResult) {
		t.Fatalf("want ErrNoResult, got %v", err)
	}
	if b.Text() != "5" || len(disp.alerts) != 1 {
		t.Errorf("empty result left %q with alerts %v", b.Text(), disp.alerts)
	}
}

func TestComputeUnavailable(t *testing.T) {
	cases := []struct {
		name string
		opts []keypad.Option
	}{
		{"none", nil},
		{"unresolved", []keypad.Option{keypad.WithEvaluator(keypad.NewDeferred())}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var disp recorder
			var logs bytes.Buffer
			opts := append(c.opts, keypad.WithDisplay(&disp), keypad.Logger(log.New(&logs, "", 0)))
			b := keypad.New(opts...)
			keys(t, b, "1+2")
			n := len(disp.shown)
			if err := b.Compute(); !errors.Is(err, keypad.ErrUnavailable) {
				t.Errorf("want ErrUnavailable, got %v", err)
			}
			if b.Text() != "1+2" || b.Last() != "" {
				t.Errorf("unavailable compute changed state to %q, %q", b.Text(), b.Last())
			}
			if len(disp.shown) != n || len(disp.alerts) != 0 {
				t.Errorf("unavailable compute rendered %q, alerted %v", disp.shown[n:], disp.alerts)
			}
			if logs.Len() == 0 {
				t.Error("unavailable compute was not logged")
			}
		})
	}
}

func TestScenarioToggleFromZero(t *testing.T) {
	b := keypad.New()
	if b.ToggleSign() {
		t.Error("toggle on zero reported a change")
	}
	if b.Text() != "0" {
		t.Errorf("toggle on zero gave %q", b.Text())
	}
	b.Press(5)
	b.ToggleSign()
	if b.Text() != "(-5)" {
		t.Errorf("want (-5), got %q", b.Text())
	}
}
