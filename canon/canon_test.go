package canon

import (
	"testing"

	"github.com/wippyai/wasmlink/registry"
)

func TestEncodeDropReleased(t *testing.T) {
	enc := EncodeDrop(registry.DropResult{Value: 42, Released: true})

	if enc&StillAliveFlag != 0 {
		t.Error("still-alive flag set on released result")
	}
	if uint32(enc) != 42 {
		t.Errorf("low half = %d, want 42", uint32(enc))
	}
}

func TestEncodeDropStillReferenced(t *testing.T) {
	enc := EncodeDrop(registry.DropResult{})

	if enc&StillAliveFlag == 0 {
		t.Error("still-alive flag clear on still-referenced result")
	}
}

func TestDecodeDrop(t *testing.T) {
	v, released := DecodeDrop(uint64(7))
	if !released {
		t.Error("DecodeDrop reported still alive for released encoding")
	}
	if v != 7 {
		t.Errorf("value = %d, want 7", v)
	}

	_, released = DecodeDrop(StillAliveFlag)
	if released {
		t.Error("DecodeDrop reported released for still-alive encoding")
	}
}

func TestDropRoundTrip(t *testing.T) {
	cases := []registry.DropResult{
		{Value: 0, Released: true},
		{Value: 0xFFFFFFFF, Released: true},
		{},
	}
	for _, res := range cases {
		v, released := DecodeDrop(EncodeDrop(res))
		if released != res.Released {
			t.Errorf("round trip of %+v lost released flag", res)
		}
		if released && v != res.Value {
			t.Errorf("round trip of %+v: value = %d", res, v)
		}
	}
}
