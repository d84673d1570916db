package domain

// LaunchSpec is the fully resolved process invocation handed to the
// executor: java binary, resolved JVM arguments, main class, resolved game
// arguments, and the directory to run in.
type LaunchSpec struct {
	JavaBin   string
	JVMArgs   []string
	MainClass string
	GameArgs  []string
	WorkDir   string
}

// CommandLine returns the argument vector passed to the java binary: JVM
// arguments, then the main class, then game arguments.
func (s LaunchSpec) CommandLine() []string {
	args := make([]string, 0, len(s.JVMArgs)+1+len(s.GameArgs))
	args = append(args, s.JVMArgs...)
	args = append(args, s.MainClass)
	args = append(args, s.GameArgs...)
	return args
}
