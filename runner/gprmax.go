package runner

import (
	"os/exec"
)

// The solver is shipped as a Python module; it is invoked as an opaque
// executable and never linked against.
const (
	pythonBinary = "python"
	gprMaxModule = "gprMax"
)

// gprMaxCommand builds the solver invocation for one scenario file.
func gprMaxCommand(inputFile string, opts Options) *exec.Cmd {
	args := []string{"-m", gprMaxModule, inputFile}

	if opts.OutputDir != "" {
		args = append(args, "-outputdir", opts.OutputDir)
	}
	// The solver picks the first available GPU itself; the flag only
	// enables the CUDA path.
	if opts.GPU {
		args = append(args, "-gpu")
	}
	if opts.GeometryOnly {
		args = append(args, "-geometry-only")
	}

	return exec.Command(pythonBinary, args...)
}
