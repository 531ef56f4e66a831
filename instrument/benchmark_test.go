package instrument

import "testing"

func BenchmarkDecode(b *testing.B) {
	data, _ := Encode(hihat(), false)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode("bench", data, false)
	}
}

func BenchmarkDecodeValidate(b *testing.B) {
	data, _ := Encode(hihat(), false)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode("bench", data, true)
	}
}

func BenchmarkEncode(b *testing.B) {
	inst := hihat()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(inst, false)
	}
}

func BenchmarkEncodeInterned(b *testing.B) {
	inst := hihat()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(inst, false, WithInternedPaths())
	}
}

func BenchmarkValidate(b *testing.B) {
	inst := hihat()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Validate(inst)
	}
}
