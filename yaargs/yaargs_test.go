package yaargs_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaCliUtils/valueparser"
	"github.com/YaCodeDev/GoYaCliUtils/yaargs"
	"github.com/YaCodeDev/GoYaCliUtils/yalogger"
)

func newBufferLogger(buf *bytes.Buffer) yalogger.Logger {
	return yalogger.NewBaseLogger(&yalogger.Config{
		Level:            yalogger.TraceLevel,
		DisableTimestamp: true,
		Output:           buf,
	}).NewLogger()
}

func lines(input ...string) func() (string, error) {
	return func() (string, error) {
		if len(input) == 0 {
			return "", io.EOF
		}

		line := input[0]
		input = input[1:]

		return line, nil
	}
}

func TestSplitLine(t *testing.T) {
	t.Parallel()

	got, err := yaargs.SplitLine(`greet "John Smith"  3 '  padded '`)
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"greet", "John Smith", "3", "  padded "}, got); diff != "" {
		t.Errorf("SplitLine() mismatch (-want +got):\n%s", diff)
	}

	empty, err := yaargs.SplitLine("   ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = yaargs.SplitLine(`unterminated "quote`)
	require.Error(t, err)
	assert.ErrorIs(t, err, yaargs.ErrMalformedLine)
	assert.Equal(t, 400, err.Code())
}

func TestBind(t *testing.T) {
	t.Parallel()

	args := []string{"greet", "John Smith", "3", "300"}

	name, err := yaargs.Bind[string](args, 1)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", name)

	count, err := yaargs.Bind[uint8](args, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), count)

	_, err = yaargs.Bind[uint8](args, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, valueparser.ErrBadConversion)

	var rejection *yaargs.Rejection

	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, 3, rejection.Index)
	assert.Equal(t, "300", rejection.Token)
	assert.Equal(t, "uint8", rejection.Type)
	assert.Equal(t, `input rejected: argument 4 "300" is not a valid uint8`, rejection.Error())
	assert.Contains(t, rejection.Reason(), "out of range")

	_, err = yaargs.Bind[int](args, 4)
	assert.ErrorIs(t, err, yaargs.ErrMissingArgument)

	_, err = yaargs.Bind[int](args, -1)
	assert.ErrorIs(t, err, yaargs.ErrMissingArgument)
}

func TestBind_TypeNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bind func() error
		want string
	}{
		{func() error { _, err := yaargs.Bind[valueparser.Char]([]string{"ab"}, 0); return err }, "char"},
		{func() error { _, err := yaargs.Bind[yalogger.Level]([]string{"loud"}, 0); return err }, "yalogger.Level"},
		{func() error { _, err := yaargs.Bind[float64]([]string{"3.14 "}, 0); return err }, "float64"},
		{func() error { _, err := yaargs.Bind[bool]([]string{"yes"}, 0); return err }, "bool"},
	}

	for _, tc := range cases {
		var rejection *yaargs.Rejection

		require.ErrorAs(t, tc.bind(), &rejection)
		assert.Equal(t, tc.want, rejection.Type)
	}
}

func TestBindN(t *testing.T) {
	t.Parallel()

	one, err := yaargs.Bind1[valueparser.Char]([]string{"ж"})
	require.NoError(t, err)
	assert.Equal(t, valueparser.Char('ж'), one)

	name, age, err := yaargs.Bind2[string, uint8]([]string{"Ann", "42"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)
	assert.Equal(t, uint8(42), age)

	x, y, z, err := yaargs.Bind3[int8, float32, bool]([]string{"-1", "0.5", "true"})
	require.NoError(t, err)
	assert.Equal(t, int8(-1), x)
	assert.Equal(t, float32(0.5), y)
	assert.True(t, z)

	_, _, err = yaargs.Bind2[string, uint8]([]string{"Ann"})
	assert.ErrorIs(t, err, yaargs.ErrArgumentCount)

	_, err = yaargs.Bind1[int]([]string{"1", "2"})
	assert.ErrorIs(t, err, yaargs.ErrArgumentCount)

	_, _, _, err = yaargs.Bind3[int8, float32, bool]([]string{"-1", "0.5", "maybe"})

	var rejection *yaargs.Rejection

	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, 2, rejection.Index)
}

func TestBindRest(t *testing.T) {
	t.Parallel()

	args := []string{"sum", "1", "2", "+3"}

	got, err := yaargs.BindRest[int64](args, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)

	none, err := yaargs.BindRest[int64](args, len(args))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = yaargs.BindRest[int64]([]string{"sum", "1", "x"}, 1)

	var rejection *yaargs.Rejection

	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, 2, rejection.Index)

	_, err = yaargs.BindRest[int64](args, 5)
	assert.ErrorIs(t, err, yaargs.ErrMissingArgument)
}

func TestBinder_Report(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	binder := yaargs.NewBinder(newBufferLogger(&buf), 0)

	_, err := yaargs.Bind[int8]([]string{"x", "128"}, 1)
	assert.True(t, binder.Report(err))
	assert.Contains(t, buf.String(), "token_index=1")
	assert.Contains(t, buf.String(), "token=128")

	assert.True(t, binder.Report(yaargs.ErrArgumentCount))
	assert.False(t, binder.Report(nil))
	assert.False(t, binder.Report(io.ErrUnexpectedEOF))
}

func TestBinder_Retry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	binder := yaargs.NewBinder(newBufferLogger(&buf), 0)

	var (
		name string
		age  uint8
	)

	err := binder.Retry(
		lines(`"Ann Lee" 300`, `"Ann Lee`, `"Ann Lee"`, `"Ann Lee" 42`),
		func(args []string) error {
			var err error

			name, age, err = yaargs.Bind2[string, uint8](args)

			return err
		},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, yaargs.ErrRetriesExhausted)
	assert.Contains(t, buf.String(), "attempt=3")

	binder = yaargs.NewBinder(newBufferLogger(&buf), 4)

	err = binder.Retry(
		lines(`"Ann Lee" 300`, `"Ann Lee" 42`),
		func(args []string) error {
			var err error

			name, age, err = yaargs.Bind2[string, uint8](args)

			return err
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", name)
	assert.Equal(t, uint8(42), age)
}

func TestBinder_RetryStopsOnOtherErrors(t *testing.T) {
	t.Parallel()

	binder := yaargs.NewBinder(nil, 5)

	errBoom := errors.New("boom")

	err := binder.Retry(lines("1"), func([]string) error { return errBoom })
	assert.ErrorIs(t, err, errBoom)

	err = binder.Retry(lines(), func([]string) error { return nil })
	assert.ErrorIs(t, err, io.EOF)
}
