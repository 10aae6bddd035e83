// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordDatasetLoad(t *testing.T) {
	keptBefore := testutil.ToFloat64(DatasetRows.WithLabelValues("kept"))
	blockedBefore := testutil.ToFloat64(DatasetRows.WithLabelValues("blocked"))
	errorsBefore := testutil.ToFloat64(DatasetLoadErrors)

	RecordDatasetLoad(20*time.Millisecond, 100, 3, 2, 1, nil)

	if got := testutil.ToFloat64(DatasetRows.WithLabelValues("kept")) - keptBefore; got != 100 {
		t.Errorf("kept delta = %v, want 100", got)
	}
	if got := testutil.ToFloat64(DatasetRows.WithLabelValues("blocked")) - blockedBefore; got != 1 {
		t.Errorf("blocked delta = %v, want 1", got)
	}

	RecordDatasetLoad(time.Millisecond, 0, 0, 0, 0, errors.New("no such file"))
	if got := testutil.ToFloat64(DatasetLoadErrors) - errorsBefore; got != 1 {
		t.Errorf("errors delta = %v, want 1", got)
	}
}

func TestRecordSnapshotBuild(t *testing.T) {
	builtAt := time.Unix(1700000000, 0)
	RecordSnapshotBuild("build", time.Second, 4200, builtAt, nil)

	if got := testutil.ToFloat64(SnapshotMovies); got != 4200 {
		t.Errorf("SnapshotMovies = %v, want 4200", got)
	}
	if got := testutil.ToFloat64(SnapshotTimestamp); got != 1700000000 {
		t.Errorf("SnapshotTimestamp = %v", got)
	}

	failedBefore := testutil.ToFloat64(SnapshotBuilds.WithLabelValues("rescore", "error"))
	RecordSnapshotBuild("rescore", time.Millisecond, 0, time.Time{}, errors.New("bad weights"))
	if got := testutil.ToFloat64(SnapshotBuilds.WithLabelValues("rescore", "error")) - failedBefore; got != 1 {
		t.Errorf("rescore errors delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(SnapshotMovies); got != 4200 {
		t.Errorf("failed build should not touch gauge, got %v", got)
	}
}

func TestRecordSentiment(t *testing.T) {
	before := testutil.ToFloat64(SentimentRequests.WithLabelValues("remote", "failure"))
	RecordSentiment("remote", 30*time.Millisecond, errors.New("timeout"))
	RecordSentiment("remote", 30*time.Millisecond, nil)

	if got := testutil.ToFloat64(SentimentRequests.WithLabelValues("remote", "failure")) - before; got != 1 {
		t.Errorf("failure delta = %v, want 1", got)
	}
}

func TestRecordQuery(t *testing.T) {
	before := testutil.ToFloat64(QueryEmpty.WithLabelValues("mood"))
	RecordQuery("mood", 0)
	RecordQuery("mood", 7)

	if got := testutil.ToFloat64(QueryEmpty.WithLabelValues("mood")) - before; got != 1 {
		t.Errorf("empty delta = %v, want 1", got)
	}

	m := &dto.Metric{}
	hist, ok := QueryResults.WithLabelValues("mood").(interface{ Write(*dto.Metric) error })
	if !ok {
		t.Fatal("observer does not expose Write")
	}
	if err := hist.Write(m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if m.GetHistogram().GetSampleCount() < 2 {
		t.Errorf("sample count = %d, want >= 2", m.GetHistogram().GetSampleCount())
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies/top", "200"))
	RecordAPIRequest("GET", "/api/v1/movies/top", "200", 5*time.Millisecond)
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies/top", "200")) - before; got != 1 {
		t.Errorf("delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}
