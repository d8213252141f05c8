package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(reservationCreate.WithLabelValues(OutcomeConflict))
	IncReservationCreate(OutcomeConflict)
	assert.Equal(t, before+1, testutil.ToFloat64(reservationCreate.WithLabelValues(OutcomeConflict)))

	cancelled := testutil.ToFloat64(reservationCancelled)
	IncReservationCancelled()
	assert.Equal(t, cancelled+1, testutil.ToFloat64(reservationCancelled))

	updated := testutil.ToFloat64(reservationUpdated)
	IncReservationUpdated()
	assert.Equal(t, updated+1, testutil.ToFloat64(reservationUpdated))

	ObserveHTTP("GET", "/api/menus", "200", 0.01)
	assert.Equal(t, 1, testutil.CollectAndCount(httpDuration, namespace+"_http_request_duration_seconds"))
}
