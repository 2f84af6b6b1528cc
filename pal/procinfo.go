package pal

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features is the subset of CPU instruction-set extensions the original
// platform layer gates engine startup on. amd64's baseline ISA already
// guarantees SSE and SSE2, so unlike the x86 feature bitset this engine was
// distilled from, there is no discrete "HasSSE" bit to report — only the
// extensions beyond the baseline vary across machines.
type Features struct {
	SSE3    bool
	SSSE3   bool
	SSE41   bool
	SSE42   bool
	AVX     bool
	AVX2    bool
	AVX512F bool
}

// Info describes the host this process is running on, gathered once during
// Bootstrap and cached for the process lifetime.
type Info struct {
	CPUName               string
	TotalMemoryBytes      uint64
	PageSizeBytes         int
	LogicalProcessorCount int
	Features              Features
}

// queryFeatures reads the architecture feature-detection tables
// golang.org/x/sys/cpu populates at init time. On non-x86 architectures
// every field is left false; Bootstrap only applies its SSE4.1 requirement
// on amd64 and 386, so that degrades gracefully rather than failing
// fatally.
func queryFeatures() Features {
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		return Features{}
	}
	return Features{
		SSE3:    cpu.X86.HasSSE3,
		SSSE3:   cpu.X86.HasSSSE3,
		SSE41:   cpu.X86.HasSSE41,
		SSE42:   cpu.X86.HasSSE42,
		AVX:     cpu.X86.HasAVX,
		AVX2:    cpu.X86.HasAVX2,
		AVX512F: cpu.X86.HasAVX512F,
	}
}
