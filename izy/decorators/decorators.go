// Package decorators wraps functions with logging, timing and error
// recovery. A wrapped function has the shape of Func.
package decorators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
)

type Func[A, R any] func(ctx context.Context, arg A) (R, error)

// Off disables a message in Logs.
const Off = slog.Level(math.MaxInt32)

type logLevels struct {
	before, after, err slog.Level
}

type LogOption func(*logLevels)

func Before(l slog.Level) LogOption { return func(o *logLevels) { o.before = l } }
func After(l slog.Level) LogOption  { return func(o *logLevels) { o.after = l } }
func Error(l slog.Level) LogOption  { return func(o *logLevels) { o.err = l } }

// Logs reports every call of fn to logger: the argument before the call, the
// result and elapsed time after it, and the error if one is returned.
func Logs[A, R any](logger *slog.Logger, name string, fn Func[A, R], opts ...LogOption) Func[A, R] {
	levels := logLevels{before: slog.LevelDebug, after: slog.LevelDebug, err: slog.LevelError}
	for _, opt := range opts {
		opt(&levels)
	}

	return func(ctx context.Context, arg A) (R, error) {
		start := time.Now()
		if levels.before != Off {
			logger.Log(ctx, levels.before, fmt.Sprintf("Function `%s` called", name), "arg", arg)
		}

		res, err := fn(ctx, arg)
		elapsed := time.Since(start)

		if err != nil {
			if levels.err != Off {
				logger.Log(ctx, levels.err, fmt.Sprintf("Error in `%s` after %s", name, elapsed), "error", err)
			}

			return res, err
		}

		if levels.after != Off {
			logger.Log(ctx, levels.after, fmt.Sprintf("Function `%s` returned after %s", name, elapsed), "output", res)
		}

		return res, nil
	}
}

type Timed[R any] struct {
	Output  R
	Elapsed time.Duration
}

func (t Timed[R]) Seconds() float64 { return t.Elapsed.Seconds() }
func (t Timed[R]) Millis() int64    { return t.Elapsed.Milliseconds() }

// ReturnsTime pairs the output of fn with the time the call took.
func ReturnsTime[A, R any](fn Func[A, R]) Func[A, Timed[R]] {
	return func(ctx context.Context, arg A) (Timed[R], error) {
		start := time.Now()
		res, err := fn(ctx, arg)

		return Timed[R]{Output: res, Elapsed: time.Since(start)}, err
	}
}

func matches(err, target error) bool {
	return target == nil || errors.Is(err, target)
}

// Ignores turns errors matching any of targets into a zero result.
func Ignores[A, R any](fn Func[A, R], targets ...error) Func[A, R] {
	return func(ctx context.Context, arg A) (R, error) {
		res, err := fn(ctx, arg)
		if err == nil {
			return res, nil
		}

		for _, target := range targets {
			if matches(err, target) {
				var zero R
				return zero, nil
			}
		}

		return res, err
	}
}

// FallsBack calls fallback with the same argument when fn fails with target.
// A nil target matches every error.
func FallsBack[A, R any](fn Func[A, R], target error, fallback Func[A, R]) Func[A, R] {
	return func(ctx context.Context, arg A) (R, error) {
		res, err := fn(ctx, arg)
		if err != nil && matches(err, target) {
			return fallback(ctx, arg)
		}

		return res, err
	}
}

// FallsBackTo returns value when fn fails with target.
func FallsBackTo[A, R any](fn Func[A, R], target error, value R) Func[A, R] {
	return FallsBack(fn, target, func(context.Context, A) (R, error) { return value, nil })
}

// FixThis marks fn as needing work. The warning is logged once when wrapping
// and again on every call when eachCall is set.
func FixThis[A, R any](logger *slog.Logger, name, msg string, fn Func[A, R], eachCall bool) Func[A, R] {
	message := strings.TrimSpace(fmt.Sprintf("You need to fix `%s`! %s", name, msg))

	warn := func() { logger.Warn(message) }
	warn()

	return func(ctx context.Context, arg A) (R, error) {
		if eachCall {
			warn()
		}

		return fn(ctx, arg)
	}
}
