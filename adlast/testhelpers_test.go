package adlast

import (
	"testing"

	"google.golang.org/protobuf/types/known/structpb"
)

func mustValue(t *testing.T, v any) *structpb.Value {
	t.Helper()
	sv, err := ValueFromAny(v)
	if err != nil {
		t.Fatalf("ValueFromAny(%v): %v", v, err)
	}
	return sv
}
