package reminders

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Parámetros del beep de aviso: senoidal corta, PCM 16-bit mono.
const (
	toneFreqHz     = 880
	toneSampleRate = 44100
	toneDurationS  = 0.3
	toneAmplitude  = 0.4
)

// ToneWAV renderiza el beep como archivo WAV completo en memoria.
// El audio es un efecto de la capa de presentación; el core solo lo sirve
// como bytes para que el cliente lo reproduzca cuando ve "imminent".
func ToneWAV() []byte {
	samples := int(toneDurationS * toneSampleRate)

	data := new(bytes.Buffer)
	data.Grow(samples * 2)
	for i := 0; i < samples; i++ {
		t := float64(i) / toneSampleRate
		v := int16(32767 * toneAmplitude * math.Sin(2*math.Pi*toneFreqHz*t))
		_ = binary.Write(data, binary.LittleEndian, v)
	}

	out := new(bytes.Buffer)
	out.Grow(44 + data.Len())

	// RIFF header
	out.WriteString("RIFF")
	_ = binary.Write(out, binary.LittleEndian, uint32(36+data.Len()))
	out.WriteString("WAVE")

	// fmt chunk: PCM, mono, 16 bits
	out.WriteString("fmt ")
	_ = binary.Write(out, binary.LittleEndian, uint32(16))
	_ = binary.Write(out, binary.LittleEndian, uint16(1))
	_ = binary.Write(out, binary.LittleEndian, uint16(1))
	_ = binary.Write(out, binary.LittleEndian, uint32(toneSampleRate))
	_ = binary.Write(out, binary.LittleEndian, uint32(toneSampleRate*2))
	_ = binary.Write(out, binary.LittleEndian, uint16(2))
	_ = binary.Write(out, binary.LittleEndian, uint16(16))

	// data chunk
	out.WriteString("data")
	_ = binary.Write(out, binary.LittleEndian, uint32(data.Len()))
	out.Write(data.Bytes())

	return out.Bytes()
}
