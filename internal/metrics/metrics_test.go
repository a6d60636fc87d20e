package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordAssignment(OpAssign, true)
	m.RecordAssignment(OpAssign, false)
	m.RecordAssignment(OpAssign, false)
	m.RecordRepair(true)
	m.RecordPersistence(OpSave, errors.New("disk full"))
	m.SetCounts(2, 5)

	assert.InDelta(t, 1, testutil.ToFloat64(m.assignments.WithLabelValues(OpAssign, ResultOK)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.assignments.WithLabelValues(OpAssign, ResultRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.repairs.WithLabelValues("true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.persistence.WithLabelValues(OpSave, ResultError)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.owners), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(m.items), 0)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordAssignment(OpUnassign, true)
		m.RecordRepair(false)
		m.RecordPersistence(OpLoad, nil)
		m.SetCounts(1, 1)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler(t *testing.T) {
	m := New()
	m.RecordRepair(false)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `custodian_repairs_total{hit_max="false"} 1`))
	assert.Contains(t, string(body), "go_goroutines")
}
