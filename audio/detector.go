package audio

import (
	"os/exec"
	"strconv"
)

// PipeKind identifies a command-line recorder
type PipeKind int

const (
	PipePulse PipeKind = iota
	PipePipeWire
	PipeALSA
	PipeSoX
)

// pipeCandidate builds recorder arguments for a sample rate
type pipeCandidate struct {
	kind PipeKind
	name string
	bin  string
	args func(rate string) []string
}

// All candidates emit raw mono float32 little-endian on stdout
var pipeCandidates = []pipeCandidate{
	{PipePulse, "parec", "parec", func(rate string) []string {
		return []string{"--raw", "--format=float32le", "--rate=" + rate, "--channels=1", "--latency-msec=20"}
	}},
	{PipePipeWire, "pw-cat", "pw-cat", func(rate string) []string {
		return []string{"--record", "--format=f32", "--rate=" + rate, "--channels=1", "-"}
	}},
	{PipeALSA, "arecord", "arecord", func(rate string) []string {
		return []string{"-t", "raw", "-f", "FLOAT_LE", "-r", rate, "-c", "1", "-q"}
	}},
	{PipeSoX, "sox", "rec", func(rate string) []string {
		return []string{"-q", "-t", "raw", "-e", "floating-point", "-b", "32", "-c", "1", "-r", rate, "-"}
	}},
}

// DetectCaptureBackend searches PATH for a recorder
// Priority: parec > pw-cat > arecord > rec (sox)
func DetectCaptureBackend() (*PipeBackend, error) {
	return detectCaptureBackend(exec.LookPath)
}

func detectCaptureBackend(lookPath func(string) (string, error)) (*PipeBackend, error) {
	for _, c := range pipeCandidates {
		path, err := lookPath(c.bin)
		if err != nil {
			continue
		}
		return &PipeBackend{
			Kind: c.kind,
			name: c.name,
			Path: path,
			args: c.args,
		}, nil
	}
	return nil, ErrNoCaptureBackend
}

func formatRate(rate float64) string {
	return strconv.Itoa(int(rate))
}
