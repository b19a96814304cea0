package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink collects rows and lets tests control capabilities and
// injected failures.
type recordingSink struct {
	caps    Capability
	rows    [][2]string
	failOn  string
	failErr error
}

func (s *recordingSink) Capabilities() Capability { return s.caps }

func (s *recordingSink) PutRow(name, setting string) error {
	if s.failOn != "" && name == s.failOn {
		return s.failErr
	}
	s.rows = append(s.rows, [2]string{name, setting})
	return nil
}

func TestReportTo_StreamsAllRowsInOrder(t *testing.T) {
	sink := &recordingSink{caps: CapMaterialize}

	err := ReportTo("/usr/local/pgsql/bin/postgres", sink)

	require.NoError(t, err)
	require.Len(t, sink.rows, EntryCount)
	assert.Equal(t, "BINDIR", sink.rows[0][0])
	assert.Equal(t, "VERSION", sink.rows[EntryCount-1][0])
}

func TestReportTo_SinkWithoutMaterializeCapability(t *testing.T) {
	sink := &recordingSink{caps: 0}

	err := ReportTo("/usr/local/pgsql/bin/postgres", sink)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaterializeNotSupported)

	var uce *UnsupportedContextError
	require.ErrorAs(t, err, &uce)
	assert.Equal(t, "42601", uce.Code)
	assert.Equal(t, "materialize mode required, but it is not allowed in this context", uce.Message)

	assert.Empty(t, sink.rows, "no partial output on precondition failure")
}

func TestReportTo_NilSink(t *testing.T) {
	err := ReportTo("/usr/local/pgsql/bin/postgres", nil)

	assert.ErrorIs(t, err, ErrMaterializeNotSupported)
}

func TestReportTo_SinkFailureIsWrapped(t *testing.T) {
	boom := errors.New("sink full")
	sink := &recordingSink{caps: CapMaterialize, failOn: "LIBDIR", failErr: boom}

	err := ReportTo("/usr/local/pgsql/bin/postgres", sink)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "LIBDIR")
}
