package reminders

import (
	"encoding/binary"
	"testing"
)

func TestToneWAV_Header(t *testing.T) {
	wav := ToneWAV()

	samples := int(toneDurationS * toneSampleRate)
	wantLen := 44 + samples*2
	if len(wav) != wantLen {
		t.Fatalf("len = %d, want %d", len(wav), wantLen)
	}

	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Fatalf("not a RIFF/WAVE file: %q %q", wav[0:4], wav[8:12])
	}

	riffSize := binary.LittleEndian.Uint32(wav[4:8])
	if int(riffSize) != 36+samples*2 {
		t.Fatalf("riff size = %d", riffSize)
	}

	if string(wav[12:16]) != "fmt " {
		t.Fatalf("fmt chunk = %q", wav[12:16])
	}
	if rate := binary.LittleEndian.Uint32(wav[24:28]); rate != toneSampleRate {
		t.Fatalf("sample rate = %d", rate)
	}
	if bits := binary.LittleEndian.Uint16(wav[34:36]); bits != 16 {
		t.Fatalf("bits per sample = %d", bits)
	}

	if string(wav[36:40]) != "data" {
		t.Fatalf("data chunk = %q", wav[36:40])
	}
	if dataSize := binary.LittleEndian.Uint32(wav[40:44]); int(dataSize) != samples*2 {
		t.Fatalf("data size = %d", dataSize)
	}

	// La señal empieza en cero (seno en fase 0).
	if first := int16(binary.LittleEndian.Uint16(wav[44:46])); first != 0 {
		t.Fatalf("first sample = %d", first)
	}
}
