package telemetry

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSessionIDIsStableUUID(t *testing.T) {
	id := SessionID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("SessionID() = %q is not a uuid: %v", id, err)
	}
	if SessionID() != id {
		t.Error("SessionID() should be stable within a run")
	}
}

func TestNoopTracerDoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "capture.action")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span should not be recording")
	}
}
