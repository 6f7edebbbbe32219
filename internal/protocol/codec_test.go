package protocol

import "testing"

func TestEncodeDecodeRoundtrip(t *testing.T) {
	in := Input{TargetTick: 42, MoveX: 1, MoveZ: -0.5, Run: true, Aim: 1.57}

	b, err := Encode(MsgInput, in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgInput {
		t.Fatalf("envelope type = %q, want %q", env.T, MsgInput)
	}

	out, err := DecodePayload[Input](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", out, in)
	}
}

func TestEncodeRejectsBadArguments(t *testing.T) {
	if _, err := Encode("", Hello{}); err == nil {
		t.Fatalf("expected error for empty type")
	}
	if _, err := Encode(MsgHello, nil); err == nil {
		t.Fatalf("expected error for nil payload")
	}
}

func TestDecodeEnvelopeRejectsGarbage(t *testing.T) {
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error for empty message")
	}
	if _, err := DecodeEnvelope([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}

func TestDecodePayloadRejectsEmpty(t *testing.T) {
	if _, err := DecodePayload[Input](Envelope{T: MsgInput}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
