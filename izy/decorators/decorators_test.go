package decorators

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errBoom  = errors.New("boom")
	errOther = errors.New("other")
)

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func double(_ context.Context, n int) (int, error) {
	return n * 2, nil
}

func failing(err error) Func[int, int] {
	return func(_ context.Context, n int) (int, error) {
		return -1, err
	}
}

func TestLogs(t *testing.T) {
	logger, buf := testLogger()

	res, err := Logs(logger, "double", double)(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 42, res)

	out := buf.String()
	assert.Contains(t, out, "Function `double` called")
	assert.Contains(t, out, "arg=21")
	assert.Contains(t, out, "output=42")
	assert.Equal(t, 2, strings.Count(out, "level=DEBUG"))
}

func TestLogsError(t *testing.T) {
	logger, buf := testLogger()

	_, err := Logs(logger, "fail", failing(errBoom), Before(Off))(context.Background(), 1)
	assert.ErrorIs(t, err, errBoom)

	out := buf.String()
	assert.NotContains(t, out, "called")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestLogsLevels(t *testing.T) {
	logger, buf := testLogger()

	_, err := Logs(logger, "double", double, Before(slog.LevelInfo), After(Off), Error(slog.LevelWarn))(context.Background(), 1)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.NotContains(t, out, "returned")
}

func TestReturnsTime(t *testing.T) {
	slow := func(_ context.Context, d time.Duration) (string, error) {
		time.Sleep(d)
		return "done", nil
	}

	res, err := ReturnsTime(slow)(context.Background(), 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "done", res.Output)
	assert.GreaterOrEqual(t, res.Elapsed, 10*time.Millisecond)
	assert.GreaterOrEqual(t, res.Millis(), int64(10))
	assert.GreaterOrEqual(t, res.Seconds(), 0.01)
}

func TestIgnores(t *testing.T) {
	res, err := Ignores(failing(errBoom), errOther, errBoom)(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, res)

	_, err = Ignores(failing(errBoom), errOther)(context.Background(), 1)
	assert.ErrorIs(t, err, errBoom)

	wrapped := failing(errors.Join(errors.New("context"), errBoom))
	_, err = Ignores(wrapped, errBoom)(context.Background(), 1)
	assert.NoError(t, err)

	res, err = Ignores(double, errBoom)(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 4, res)
}

func TestFallsBack(t *testing.T) {
	res, err := FallsBack(failing(errBoom), errBoom, double)(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 10, res)

	_, err = FallsBack(failing(errBoom), errOther, double)(context.Background(), 5)
	assert.ErrorIs(t, err, errBoom)

	res, err = FallsBackTo(failing(errOther), nil, 99)(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 99, res)

	res, err = FallsBackTo(double, nil, 99)(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 10, res)
}

func TestFixThis(t *testing.T) {
	logger, buf := testLogger()

	fn := FixThis(logger, "please", "errors should be returned", double, true)
	assert.Equal(t, 1, strings.Count(buf.String(), "You need to fix `please`!"))

	_, _ = fn(context.Background(), 1)
	_, _ = fn(context.Background(), 1)
	assert.Equal(t, 3, strings.Count(buf.String(), "level=WARN"))

	buf.Reset()
	quiet := FixThis(logger, "quiet", "", double, false)
	_, _ = quiet(context.Background(), 1)
	assert.Equal(t, 1, strings.Count(buf.String(), "level=WARN"))
}
