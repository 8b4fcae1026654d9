package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestStartAndOutcome_Success(t *testing.T) {
	t.Parallel()
	res := outcome.Success[int, outcome.AnyError](5)
	c := Start(res)

	out := c.Outcome()
	if v, ok := out.Value(); !ok || v != 5 {
		t.Fatalf("expected success with 5, got: val=%v, ok=%v", v, ok)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue(7).Outcome()
	if v, ok := out.Value(); !ok || v != 7 {
		t.Fatalf("expected success with 7, got: val=%v, ok=%v", v, ok)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	boom := outcome.Erase(errors.New("boom"))
	c := Start(outcome.Failure[int](boom))

	called := false
	c = c.Then(func(v int) outcome.Outcome[int, outcome.AnyError] {
		called = true
		return outcome.Success[int, outcome.AnyError](v + 1)
	})

	out := c.Outcome()
	if err, ok := out.Err(); !ok || err.Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: err=%v, ok=%v", err, ok)
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial outcome is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	c := FromValue(3).
		Then(func(v int) outcome.Outcome[int, outcome.AnyError] {
			return outcome.Success[int, outcome.AnyError](v * 2)
		})

	out := c.Outcome()
	if v, ok := out.Value(); !ok || v != 6 {
		t.Fatalf("expected success with 6, got: val=%v, ok=%v", v, ok)
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	c := ThenTry(FromValue(10), func(v int) (int, error) {
		return 0, errors.New("try-error")
	})

	out := c.Outcome()
	if err, ok := out.Err(); !ok || err.Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: err=%v, ok=%v", err, ok)
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()
	c := ThenTry(FromValue(4), func(v int) (int, error) { return v * v, nil })

	out := c.Outcome()
	if v, ok := out.Value(); !ok || v != 16 {
		t.Fatalf("expected success with 16, got: val=%v, ok=%v", v, ok)
	}
}

func TestMap_TypeChanging(t *testing.T) {
	t.Parallel()
	c := Map(FromValue(21), strconv.Itoa)

	out := c.Outcome()
	if v, ok := out.Value(); !ok || v != "21" {
		t.Fatalf("expected success with \"21\", got: val=%v, ok=%v", v, ok)
	}
}

func TestMap_Method_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	boom := outcome.Erase(errors.New("oops"))
	c := Start(outcome.Failure[int](boom)).
		Map(func(v int) int { return v + 100 })

	out := c.Outcome()
	if err, ok := out.Err(); !ok || err.Error() != "oops" {
		t.Fatalf("expected failure 'oops', got: err=%v, ok=%v", err, ok)
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	successes, failures := 0, 0

	FromValue(1).Ensure(
		func(v int) { successes++ },
		func(err outcome.AnyError) { failures++ })

	Start(outcome.Failure[int](outcome.Erase(errors.New("x")))).Ensure(
		func(v int) { successes++ },
		func(err outcome.AnyError) { failures++ })

	if successes != 1 || failures != 1 {
		t.Fatalf("expected one side effect per branch, got: successes=%d, failures=%d", successes, failures)
	}
}

func TestRecover_LazyFallback(t *testing.T) {
	t.Parallel()
	calls := 0
	v := FromValue(9).Recover(func() int {
		calls++
		return -1
	})
	if v != 9 || calls != 0 {
		t.Fatalf("expected original 9 without fallback, got: val=%v, calls=%d", v, calls)
	}

	v = Start(outcome.Failure[int](outcome.Erase(errors.New("x")))).Recover(func() int {
		calls++
		return 13
	})
	if v != 13 || calls != 1 {
		t.Fatalf("expected lazy fallback 13 once, got: val=%v, calls=%d", v, calls)
	}
}

func TestRecoverWith(t *testing.T) {
	t.Parallel()
	out := Start(outcome.Failure[int](outcome.Erase(errors.New("x")))).
		RecoverWith(func() outcome.Outcome[int, outcome.AnyError] {
			return outcome.Success[int, outcome.AnyError](2)
		}).
		Outcome()

	if v, ok := out.Value(); !ok || v != 2 {
		t.Fatalf("expected fallback success 2, got: val=%v, ok=%v", v, ok)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	s := Finally(FromValue(2),
		func(v int) string { return "val:" + strconv.Itoa(v) },
		func(err outcome.AnyError) string { return "err" })
	if s != "val:2" {
		t.Fatalf("expected val:2, got %q", s)
	}

	f := Finally(Start(outcome.Failure[int](outcome.Erase(errors.New("x")))),
		func(v int) string { return "val:" + strconv.Itoa(v) },
		func(err outcome.AnyError) string { return "err" })
	if f != "err" {
		t.Fatalf("expected err, got %q", f)
	}
}
